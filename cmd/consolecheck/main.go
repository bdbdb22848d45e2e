package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"trackadmin/console"
	"trackadmin/console/client"
	"trackadmin/console/session"
)

// consolecheck logs in, refreshes every panel once and prints the row
// counts. It exercises the whole console stack against a live server.
func main() {
	baseURL := getenv("APP_URL", "http://localhost:8080")
	userName := getenv("APP_USER", "admin")
	password := getenv("APP_PASSWORD", "Admin123!Trackadmin")

	store, err := session.Open(getenv("CONSOLE_DB", "console.db"))
	if err != nil {
		log.Fatalf("open session store: %v", err)
	}
	defer store.Close()

	c := client.New(baseURL, store)
	ctx := context.Background()

	sess, err := c.Login(ctx, userName, password)
	if err != nil {
		log.Fatalf("login: %v", err)
	}
	if err := store.Set(sess); err != nil {
		log.Fatalf("persist session: %v", err)
	}

	alerts := console.NewAlerts()
	busy := console.NewBusyIndicator()

	userTypes := console.NewPanel[client.Category]("User Types", client.NewUserTypeRepository(c), alerts, busy)
	bugSystemTypes := console.NewPanel[client.Category]("Bug System Types", client.NewBugSystemTypeRepository(c), alerts, busy)
	ruleManagerTypes := console.NewPanel[client.Category]("Rule Manager Types", client.NewRuleManagerTypeRepository(c), alerts, busy)
	bugSystems := console.NewPanel[client.BugSystem]("Bug Systems", client.NewBugSystemRepository(c), alerts, busy)
	ruleManagers := console.NewPanel[client.RuleManager]("Rule Managers", client.NewRuleManagerRepository(c), alerts, busy)
	permissions := console.NewPanel[client.Permission]("Permissions", client.NewPermissionRepository(c), alerts, busy)
	projects := console.NewPanel[client.Project]("Projects", client.NewProjectRepository(c), alerts, busy)
	users := console.NewPanel[client.User]("Users", client.NewUserRepository(c), alerts, busy)

	categoryName := func(item client.Category) string { return item.Name }

	coordinator := console.NewCoordinator(alerts, busy)
	console.Attach(coordinator, userTypes)
	console.Attach(coordinator, bugSystemTypes)
	console.Attach(coordinator, ruleManagerTypes)
	console.Attach(coordinator, bugSystems, console.Picklist(bugSystemTypes, categoryName))
	console.Attach(coordinator, ruleManagers, console.Picklist(ruleManagerTypes, categoryName))
	console.Attach(coordinator, permissions)
	console.Attach(coordinator, projects,
		console.Picklist(bugSystems, func(item client.BugSystem) string { return item.Name }),
		console.Picklist(ruleManagers, func(item client.RuleManager) string { return item.Name }))
	console.Attach(coordinator, users, console.Picklist(userTypes, categoryName))
	defer coordinator.Close()

	if err := coordinator.LoadAll(ctx); err != nil {
		log.Printf("refresh incomplete: %v", err)
	}
	if msg := alerts.Current(); msg != "" {
		log.Printf("alert: %s", msg)
	}

	fmt.Printf("user types:         %d\n", len(userTypes.Items()))
	fmt.Printf("bug system types:   %d\n", len(bugSystemTypes.Items()))
	fmt.Printf("rule manager types: %d\n", len(ruleManagerTypes.Items()))
	fmt.Printf("bug systems:        %d\n", len(bugSystems.Items()))
	fmt.Printf("rule managers:      %d\n", len(ruleManagers.Items()))
	fmt.Printf("permissions:        %d\n", len(permissions.Items()))
	fmt.Printf("projects:           %d\n", len(projects.Items()))
	fmt.Printf("users:              %d\n", len(users.Items()))

	if err := c.Logout(ctx); err != nil {
		log.Printf("logout: %v", err)
	}
	if err := store.Clear(); err != nil {
		log.Printf("clear session: %v", err)
	}
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
