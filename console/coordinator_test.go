package console

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"
)

type slowRepo struct {
	fakeRepo
	delay   time.Duration
	release chan struct{}
}

func (r *slowRepo) Load(ctx context.Context) ([]category, error) {
	if r.release != nil {
		select {
		case <-r.release:
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	if r.delay > 0 {
		select {
		case <-time.After(r.delay):
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	return r.fakeRepo.Load(ctx)
}

func TestCoordinatorAppliesResultsInAttachOrder(t *testing.T) {
	alerts := NewAlerts()
	busy := NewBusyIndicator()

	// The first panel finishes last; the second panel's picklist must
	// still see the first panel's fresh rows.
	typesRepo := &slowRepo{
		fakeRepo: fakeRepo{items: []category{{ID: 1, Name: "Bugzilla"}, {ID: 2, Name: "Jira"}}},
		delay:    50 * time.Millisecond,
	}
	systemsRepo := &slowRepo{
		fakeRepo: fakeRepo{items: []category{{ID: 7, Name: "Main Tracker"}}},
	}

	types := NewPanel[category]("Bug System Types", typesRepo, alerts, busy)
	systems := NewPanel[category]("Bug Systems", systemsRepo, alerts, busy)

	c := NewCoordinator(alerts, busy)
	Attach(c, types)
	Attach(c, systems, Picklist(types, func(item category) string { return item.Name }))
	defer c.Close()

	if err := c.LoadAll(context.Background()); err != nil {
		t.Fatalf("load all: %v", err)
	}
	if busy.Active() {
		t.Fatal("busy indicator should be idle after LoadAll")
	}

	picklists := systems.Picklists()
	if len(picklists) != 1 {
		t.Fatalf("expected one picklist, got %d", len(picklists))
	}
	want := []Option{{Label: "Bugzilla", Value: 1}, {Label: "Jira", Value: 2}}
	if len(picklists[0]) != len(want) {
		t.Fatalf("unexpected picklist: %+v", picklists[0])
	}
	for i, option := range picklists[0] {
		if option != want[i] {
			t.Fatalf("picklist[%d] = %+v, want %+v", i, option, want[i])
		}
	}
}

func TestCoordinatorFailedPanelKeepsRowsOthersRefresh(t *testing.T) {
	alerts := NewAlerts()
	busy := NewBusyIndicator()

	typesRepo := &slowRepo{fakeRepo: fakeRepo{items: []category{{ID: 1, Name: "Bugzilla"}}}}
	systemsRepo := &slowRepo{fakeRepo: fakeRepo{items: []category{{ID: 7, Name: "Main Tracker"}}}}

	types := NewPanel[category]("Bug System Types", typesRepo, alerts, busy)
	systems := NewPanel[category]("Bug Systems", systemsRepo, alerts, busy)

	c := NewCoordinator(alerts, busy)
	Attach(c, types)
	Attach(c, systems)
	defer c.Close()

	if err := c.LoadAll(context.Background()); err != nil {
		t.Fatalf("first load all: %v", err)
	}

	typesRepo.loadErr = errors.New("connection refused")
	systemsRepo.items = append(systemsRepo.items, category{ID: 8, Name: "Second Tracker"})

	if err := c.LoadAll(context.Background()); err == nil {
		t.Fatal("expected error from failed panel")
	}
	if len(types.Items()) != 1 {
		t.Fatalf("failed panel must keep rows, got %+v", types.Items())
	}
	if len(systems.Items()) != 2 {
		t.Fatalf("healthy panel must refresh, got %+v", systems.Items())
	}
	if got := alerts.Current(); !strings.HasPrefix(got, "Failed to load the Bug System Types.") {
		t.Fatalf("unexpected alert: %q", got)
	}
}

func TestCoordinatorCloseCancelsInFlightLoads(t *testing.T) {
	alerts := NewAlerts()
	busy := NewBusyIndicator()

	blocked := &slowRepo{
		fakeRepo: fakeRepo{items: []category{{ID: 1, Name: "Bugzilla"}}},
		release:  make(chan struct{}),
	}
	types := NewPanel[category]("Bug System Types", blocked, alerts, busy)

	c := NewCoordinator(alerts, busy)
	Attach(c, types)

	done := make(chan error, 1)
	go func() {
		done <- c.LoadAll(context.Background())
	}()

	c.Close()
	select {
	case err := <-done:
		if !errors.Is(err, context.Canceled) {
			t.Fatalf("expected canceled load, got %v", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("LoadAll did not observe Close")
	}
	if len(types.Items()) != 0 {
		t.Fatalf("canceled load must not fill rows, got %+v", types.Items())
	}
}
