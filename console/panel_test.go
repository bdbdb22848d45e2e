package console

import (
	"context"
	"errors"
	"strings"
	"testing"
)

type category struct {
	ID   int64
	Name string
}

func (c category) EntityID() int64 { return c.ID }

type fakeRepo struct {
	items   []category
	nextID  int64
	loadErr error
	saveErr error
}

func (r *fakeRepo) Load(ctx context.Context) ([]category, error) {
	if r.loadErr != nil {
		return nil, r.loadErr
	}
	out := make([]category, len(r.items))
	copy(out, r.items)
	return out, nil
}

func (r *fakeRepo) Create(ctx context.Context, item category) (category, error) {
	if r.saveErr != nil {
		return category{}, r.saveErr
	}
	r.nextID++
	item.ID = r.nextID
	r.items = append(r.items, item)
	return item, nil
}

func (r *fakeRepo) Update(ctx context.Context, item category) (category, error) {
	if r.saveErr != nil {
		return category{}, r.saveErr
	}
	for i := range r.items {
		if r.items[i].ID == item.ID {
			r.items[i] = item
		}
	}
	return item, nil
}

func (r *fakeRepo) Delete(ctx context.Context, id int64) error {
	if r.saveErr != nil {
		return r.saveErr
	}
	for i := range r.items {
		if r.items[i].ID == id {
			r.items = append(r.items[:i], r.items[i+1:]...)
			break
		}
	}
	return nil
}

func newTestPanel(t *testing.T, repo *fakeRepo) (*Panel[category], *Alerts) {
	t.Helper()
	alerts := NewAlerts()
	p := NewPanel[category]("User Types", repo, alerts, NewBusyIndicator())
	return p, alerts
}

func TestPanelLoadFailureAlertsAndKeepsRows(t *testing.T) {
	repo := &fakeRepo{items: []category{{ID: 1, Name: "Admin"}}, nextID: 1}
	p, alerts := newTestPanel(t, repo)
	items, err := p.Load(context.Background())
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	p.FillData(items)

	repo.loadErr = errors.New("connection refused")
	if _, err := p.Load(context.Background()); err == nil {
		t.Fatal("expected load error")
	}
	if got := alerts.Current(); !strings.HasPrefix(got, "Failed to load the User Types.") {
		t.Fatalf("unexpected alert: %q", got)
	}
	if len(p.Items()) != 1 {
		t.Fatalf("rows should survive a failed load, got %d", len(p.Items()))
	}
}

func TestPanelSelectionByID(t *testing.T) {
	p, _ := newTestPanel(t, &fakeRepo{})
	p.FillData([]category{{ID: 1, Name: "Admin"}, {ID: 2, Name: "Viewer"}})

	if !p.Select(2) {
		t.Fatal("select existing id")
	}
	selected, ok := p.Selected()
	if !ok || selected.Name != "Viewer" {
		t.Fatalf("unexpected selection: %+v ok=%v", selected, ok)
	}

	// A refresh with the same id keeps the selection; dropping the id clears it.
	p.FillData([]category{{ID: 2, Name: "Viewer Renamed"}})
	selected, ok = p.Selected()
	if !ok || selected.Name != "Viewer Renamed" {
		t.Fatalf("selection should follow id across refills, got %+v ok=%v", selected, ok)
	}
	p.FillData([]category{{ID: 3, Name: "Other"}})
	if _, ok := p.Selected(); ok {
		t.Fatal("selection should clear when id disappears")
	}

	if p.Select(99) {
		t.Fatal("selecting an unknown id must fail")
	}
}

func TestPanelShowDialogRequiresSelectionForEdit(t *testing.T) {
	p, alerts := newTestPanel(t, &fakeRepo{})
	p.FillData([]category{{ID: 1, Name: "Admin"}})

	if p.ShowDialog(false) {
		t.Fatal("edit dialog must not open without a selection")
	}
	if alerts.Current() != "Please select a row" {
		t.Fatalf("unexpected alert: %q", alerts.Current())
	}
	if p.DialogOpen() {
		t.Fatal("dialog should stay closed")
	}

	p.Select(1)
	if !p.ShowDialog(false) {
		t.Fatal("edit dialog should open with a selection")
	}
	if alerts.Current() != "" {
		t.Fatalf("alert should clear on dialog open, got %q", alerts.Current())
	}
	if p.Draft().Name != "Admin" {
		t.Fatalf("draft should copy the selected row, got %+v", p.Draft())
	}

	p.CloseDialog()
	p.CloseDialog()
	if p.DialogOpen() {
		t.Fatal("dialog should stay closed after CloseDialog")
	}
}

func TestPanelSaveCreateAppendsServerRow(t *testing.T) {
	repo := &fakeRepo{nextID: 10}
	p, _ := newTestPanel(t, repo)
	p.FillData(nil)

	p.ShowDialog(true)
	p.SetDraft(category{Name: "Tester"})
	if err := p.Save(context.Background()); err != nil {
		t.Fatalf("save: %v", err)
	}
	if p.DialogOpen() {
		t.Fatal("dialog should close on save")
	}
	items := p.Items()
	if len(items) != 1 || items[0].ID != 11 || items[0].Name != "Tester" {
		t.Fatalf("unexpected rows after create: %+v", items)
	}
}

func TestPanelSaveUpdateReplacesByID(t *testing.T) {
	repo := &fakeRepo{items: []category{{ID: 1, Name: "Admin"}, {ID: 2, Name: "Viewer"}}, nextID: 2}
	p, _ := newTestPanel(t, repo)
	p.FillData(repo.items)

	p.Select(2)
	p.ShowDialog(false)
	draft := p.Draft()
	draft.Name = "Reader"
	p.SetDraft(draft)
	if err := p.Save(context.Background()); err != nil {
		t.Fatalf("save: %v", err)
	}
	items := p.Items()
	if len(items) != 2 || items[1].Name != "Reader" {
		t.Fatalf("unexpected rows after update: %+v", items)
	}
}

func TestPanelSaveFailureAlertsAndKeepsRows(t *testing.T) {
	repo := &fakeRepo{items: []category{{ID: 1, Name: "Admin"}}, nextID: 1}
	p, alerts := newTestPanel(t, repo)
	p.FillData(repo.items)

	repo.saveErr = errors.New("Row in use")
	p.ShowDialog(true)
	p.SetDraft(category{Name: "Tester"})
	if err := p.Save(context.Background()); err == nil {
		t.Fatal("expected save error")
	}
	if got := alerts.Current(); !strings.HasPrefix(got, "Failed to create the User Types.") {
		t.Fatalf("unexpected alert: %q", got)
	}
	if len(p.Items()) != 1 {
		t.Fatalf("rows must not change on failed save, got %+v", p.Items())
	}
}

func TestPanelDeleteRemovesSelectedRow(t *testing.T) {
	repo := &fakeRepo{items: []category{{ID: 1, Name: "Admin"}, {ID: 2, Name: "Viewer"}, {ID: 3, Name: "Tester"}}, nextID: 3}
	p, alerts := newTestPanel(t, repo)
	p.FillData(repo.items)

	if err := p.Delete(context.Background()); err != nil {
		t.Fatalf("delete without selection: %v", err)
	}
	if alerts.Current() != "Please select a row" {
		t.Fatalf("unexpected alert: %q", alerts.Current())
	}

	p.Select(2)
	if err := p.Delete(context.Background()); err != nil {
		t.Fatalf("delete: %v", err)
	}
	items := p.Items()
	if len(items) != 2 || items[0].ID != 1 || items[1].ID != 3 {
		t.Fatalf("unexpected rows after delete: %+v", items)
	}
	if _, ok := p.Selected(); ok {
		t.Fatal("selection should clear after delete")
	}
	if !p.Select(3) {
		t.Fatal("remaining rows must stay addressable by id")
	}
}

func TestPanelDeleteFailureClearsSelection(t *testing.T) {
	repo := &fakeRepo{items: []category{{ID: 1, Name: "Admin"}}, nextID: 1}
	p, alerts := newTestPanel(t, repo)
	p.FillData(repo.items)
	p.Select(1)

	repo.saveErr = errors.New("Row in use")
	if err := p.Delete(context.Background()); err == nil {
		t.Fatal("expected delete error")
	}
	if got := alerts.Current(); !strings.Contains(got, "Row in use") {
		t.Fatalf("unexpected alert: %q", got)
	}
	if len(p.Items()) != 1 {
		t.Fatal("row must survive failed delete")
	}
	if _, ok := p.Selected(); ok {
		t.Fatal("selection should clear even on failed delete")
	}
}

func TestBusyIndicatorRefCounts(t *testing.T) {
	busy := NewBusyIndicator()
	if busy.Active() {
		t.Fatal("new indicator must be idle")
	}
	busy.Show()
	busy.Show()
	busy.Hide()
	if !busy.Active() {
		t.Fatal("indicator must stay on until the last Hide")
	}
	busy.Hide()
	if busy.Active() {
		t.Fatal("indicator should be idle")
	}
	busy.Hide()
	if busy.Active() {
		t.Fatal("extra Hide must not flip the indicator on")
	}
}
