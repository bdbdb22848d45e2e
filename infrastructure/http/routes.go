package http

import (
	"github.com/go-chi/chi/v5"

	"trackadmin/api/bugsystems"
	"trackadmin/api/categories"
	"trackadmin/api/permissions"
	"trackadmin/api/projects"
	"trackadmin/api/reports"
	"trackadmin/api/rulemanagers"
	"trackadmin/api/users"
)

// RegisterResourceRoutes registers the authenticated resource routes.
// Each resource exposes list under GET {Resource}/{method}, create under
// POST, update under PUT, and delete under PUT {Resource}/{deleteMethod}
// with the row id as the request body.
func (s *Server) RegisterResourceRoutes(r chi.Router) chi.Router {
	for _, res := range []categories.Resource{categories.UserTypes, categories.BugSystemTypes, categories.RuleManagerTypes} {
		res := res
		r.Get("/"+res.Route+"/"+res.Method, categories.ListHandler(s.DB, res))
		r.Post("/"+res.Route+"/"+res.Method, categories.CreateHandler(s.DB, res))
		r.Put("/"+res.Route+"/"+res.Method, categories.UpdateHandler(s.DB, res))
		r.Put("/"+res.Route+"/"+res.DeleteMethod, categories.DeleteHandler(s.DB, res))
	}
	// Legacy alias kept for older console builds.
	r.Get("/Types/userTypes", categories.ListHandler(s.DB, categories.UserTypes))

	r.Get("/BugSystem/bugSystem", bugsystems.ListHandler(s.DB))
	r.Post("/BugSystem/bugSystem", bugsystems.CreateHandler(s.DB))
	r.Put("/BugSystem/bugSystem", bugsystems.UpdateHandler(s.DB))
	r.Put("/BugSystem/deleteBugSystem", bugsystems.DeleteHandler(s.DB))

	r.Get("/RuleManager/ruleManager", rulemanagers.ListHandler(s.DB))
	r.Post("/RuleManager/ruleManager", rulemanagers.CreateHandler(s.DB))
	r.Put("/RuleManager/ruleManager", rulemanagers.UpdateHandler(s.DB))
	r.Put("/RuleManager/deleteRuleManager", rulemanagers.DeleteHandler(s.DB))

	r.Get("/Permission/permission", permissions.ListHandler(s.DB))
	r.Post("/Permission/permission", permissions.CreateHandler(s.DB))
	r.Put("/Permission/permission", permissions.UpdateHandler(s.DB))
	r.Put("/Permission/deletePermission", permissions.DeleteHandler(s.DB))

	r.Get("/Project/project", projects.ListHandler(s.DB))
	r.Post("/Project/project", projects.CreateHandler(s.DB))
	r.Put("/Project/project", projects.UpdateHandler(s.DB))
	r.Put("/Project/deleteProject", projects.DeleteHandler(s.DB))

	r.Get("/User/user", users.ListHandler(s.DB))
	r.Post("/User/user", users.CreateHandler(s.DB, s.UserCache))
	r.Put("/User/user", users.UpdateHandler(s.DB, s.UserCache))
	r.Put("/User/deleteUser", users.DeleteHandler(s.DB, s.SessionCache, s.UserCache))

	r.Get("/Report/projects.pdf", reports.ProjectsPDFHandler(s.DB))
	r.Get("/Report/projects.csv", reports.ProjectsCSVHandler(s.DB))

	return r
}
