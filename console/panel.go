package console

import (
	"context"
	"fmt"
)

// Entity is a row with a server-assigned identity. A zero id marks a
// row that has not been created yet.
type Entity interface {
	EntityID() int64
}

// Repository loads and mutates one entity collection on the server.
type Repository[T Entity] interface {
	Load(ctx context.Context) ([]T, error)
	Create(ctx context.Context, item T) (T, error)
	Update(ctx context.Context, item T) (T, error)
	Delete(ctx context.Context, id int64) error
}

// Option is a picklist entry shown in an edit dialog.
type Option struct {
	Label string
	Value int64
}

// Panel is a list with an edit dialog over one entity collection. It
// keeps rows in load order, tracks the selected row by id, and reports
// failures through the shared alert surface.
type Panel[T Entity] struct {
	name  string
	repo  Repository[T]
	alert *Alerts
	busy  *BusyIndicator

	items     []T
	index     map[int64]int
	picklists [][]Option

	selectedID int64
	selected   bool

	dialogOpen bool
	draft      T
}

func NewPanel[T Entity](name string, repo Repository[T], alert *Alerts, busy *BusyIndicator) *Panel[T] {
	return &Panel[T]{
		name:  name,
		repo:  repo,
		alert: alert,
		busy:  busy,
		index: make(map[int64]int),
	}
}

func (p *Panel[T]) Name() string { return p.name }

// Load fetches the collection without touching the panel's rows. The
// caller decides when the result is applied with FillData, so a
// multi-panel refresh can apply every result in a fixed order.
func (p *Panel[T]) Load(ctx context.Context) ([]T, error) {
	items, err := p.repo.Load(ctx)
	if err != nil {
		p.alert.Error(fmt.Sprintf("Failed to load the %s. %v", p.name, err))
		return nil, err
	}
	return items, nil
}

// FillData replaces the panel's rows and picklists. Selection survives
// only when the selected id is still present.
func (p *Panel[T]) FillData(items []T, picklists ...[]Option) {
	p.items = items
	p.index = make(map[int64]int, len(items))
	for i, item := range items {
		p.index[item.EntityID()] = i
	}
	p.picklists = picklists
	if p.selected {
		if _, ok := p.index[p.selectedID]; !ok {
			p.ClearSelection()
		}
	}
}

func (p *Panel[T]) Items() []T { return p.items }

// Picklists returns the option lists supplied with the last FillData.
func (p *Panel[T]) Picklists() [][]Option { return p.picklists }

// Select marks the row with the given id as selected. Selecting an id
// that is not in the panel clears the selection.
func (p *Panel[T]) Select(id int64) bool {
	if _, ok := p.index[id]; !ok {
		p.ClearSelection()
		return false
	}
	p.selectedID = id
	p.selected = true
	return true
}

func (p *Panel[T]) ClearSelection() {
	p.selectedID = 0
	p.selected = false
}

// Selected returns the selected row, looked up by id.
func (p *Panel[T]) Selected() (T, bool) {
	var zero T
	if !p.selected {
		return zero, false
	}
	i, ok := p.index[p.selectedID]
	if !ok {
		return zero, false
	}
	return p.items[i], true
}

// ShowDialog opens the edit dialog. For a create the draft starts
// empty; for an update it starts as a copy of the selected row, and
// without a selection the dialog stays closed.
func (p *Panel[T]) ShowDialog(create bool) bool {
	p.alert.Clear()
	if create {
		var zero T
		p.draft = zero
		p.dialogOpen = true
		return true
	}
	selected, ok := p.Selected()
	if !ok {
		p.alert.Error("Please select a row")
		return false
	}
	p.draft = selected
	p.dialogOpen = true
	return true
}

func (p *Panel[T]) CloseDialog() {
	p.dialogOpen = false
}

func (p *Panel[T]) DialogOpen() bool { return p.dialogOpen }

func (p *Panel[T]) Draft() T { return p.draft }

func (p *Panel[T]) SetDraft(item T) { p.draft = item }

// Save submits the draft. A draft with a zero id is created, any other
// draft updates its row. The dialog closes before the request is sent;
// a failure surfaces as an alert while the rows keep their last known
// state.
func (p *Panel[T]) Save(ctx context.Context) error {
	p.alert.Clear()
	p.CloseDialog()
	p.busy.Show()
	defer p.busy.Hide()

	if p.draft.EntityID() == 0 {
		created, err := p.repo.Create(ctx, p.draft)
		if err != nil {
			p.alert.Error(fmt.Sprintf("Failed to create the %s. %v", p.name, err))
			return err
		}
		p.items = append(p.items, created)
		p.index[created.EntityID()] = len(p.items) - 1
		return nil
	}

	updated, err := p.repo.Update(ctx, p.draft)
	if err != nil {
		p.alert.Error(fmt.Sprintf("Failed to update the %s. %v", p.name, err))
		return err
	}
	if i, ok := p.index[updated.EntityID()]; ok {
		p.items[i] = updated
	}
	return nil
}

// Delete removes the selected row. The selection is cleared whether or
// not the request succeeds.
func (p *Panel[T]) Delete(ctx context.Context) error {
	p.alert.Clear()
	selected, ok := p.Selected()
	if !ok {
		p.alert.Error("Please select a row")
		return nil
	}
	defer p.ClearSelection()
	p.busy.Show()
	defer p.busy.Hide()

	id := selected.EntityID()
	if err := p.repo.Delete(ctx, id); err != nil {
		p.alert.Error(fmt.Sprintf("Failed to delete the %s. %v", p.name, err))
		return err
	}

	i := p.index[id]
	p.items = append(p.items[:i], p.items[i+1:]...)
	delete(p.index, id)
	for j := i; j < len(p.items); j++ {
		p.index[p.items[j].EntityID()] = j
	}
	return nil
}

// Picklist derives an option list from a panel's current rows.
func Picklist[T Entity](p *Panel[T], label func(T) string) func() []Option {
	return func() []Option {
		options := make([]Option, 0, len(p.items))
		for _, item := range p.items {
			options = append(options, Option{Label: label(item), Value: item.EntityID()})
		}
		return options
	}
}
