package console

import (
	"context"

	"golang.org/x/sync/errgroup"
)

type loader struct {
	name string
	load func(ctx context.Context) (fill func(), err error)
}

// Coordinator refreshes a set of panels together. Panels load
// concurrently and their results are applied in attach order, so a
// panel whose picklists derive from an earlier panel always sees that
// panel's fresh rows.
type Coordinator struct {
	alert *Alerts
	busy  *BusyIndicator

	ctx    context.Context
	cancel context.CancelFunc

	loaders []loader
}

func NewCoordinator(alert *Alerts, busy *BusyIndicator) *Coordinator {
	ctx, cancel := context.WithCancel(context.Background())
	return &Coordinator{alert: alert, busy: busy, ctx: ctx, cancel: cancel}
}

// Attach registers a panel for coordinated refreshes. The related
// functions produce the panel's picklists and run at apply time, after
// every panel attached before this one has been filled.
func Attach[T Entity](c *Coordinator, p *Panel[T], related ...func() []Option) {
	c.loaders = append(c.loaders, loader{
		name: p.Name(),
		load: func(ctx context.Context) (func(), error) {
			items, err := p.Load(ctx)
			if err != nil {
				return nil, err
			}
			return func() {
				picklists := make([][]Option, 0, len(related))
				for _, options := range related {
					picklists = append(picklists, options())
				}
				p.FillData(items, picklists...)
			}, nil
		},
	})
}

// LoadAll fetches every attached panel concurrently, then applies the
// results in attach order. Panels whose fetch failed keep their rows;
// the failure has already been surfaced through the alert surface.
// The first fetch error is returned.
func (c *Coordinator) LoadAll(ctx context.Context) error {
	c.busy.Show()
	defer c.busy.Hide()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	stop := context.AfterFunc(c.ctx, cancel)
	defer stop()

	fills := make([]func(), len(c.loaders))
	var g errgroup.Group
	for i, l := range c.loaders {
		g.Go(func() error {
			fill, err := l.load(ctx)
			if err != nil {
				return err
			}
			fills[i] = fill
			return nil
		})
	}
	err := g.Wait()

	for _, fill := range fills {
		if fill != nil {
			fill()
		}
	}
	return err
}

// Close cancels any refresh still in flight and every one after it.
func (c *Coordinator) Close() {
	c.cancel()
}
