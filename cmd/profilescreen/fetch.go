package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"profilescreen/internal/presenter"
)

// headlessView collects presenter output without a terminal UI.
type headlessView struct {
	alerts chan struct{}
	snaps  chan presenter.Snapshot
}

func newHeadlessView() *headlessView {
	return &headlessView{
		alerts: make(chan struct{}, 1),
		snaps:  make(chan presenter.Snapshot, 16),
	}
}

func (v *headlessView) ShowErrorAlert() {
	select {
	case v.alerts <- struct{}{}:
	default:
	}
}

func (v *headlessView) Render(s presenter.Snapshot) {
	select {
	case v.snaps <- s:
	default:
	}
}

// errFetchFailed is returned when the presenter raised an error alert.
var errFetchFailed = errors.New("fetch failed")

func newFetchCmd(a *app) *cobra.Command {
	var timeout time.Duration
	cmd := &cobra.Command{
		Use:   "fetch",
		Short: "Fetch once without the UI and print the saved favourites",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
			defer cancel()
			view := newHeadlessView()
			p, err := a.newPresenter(view)
			if err != nil {
				return err
			}
			defer p.Close()
			s, err := fetchOnce(ctx, p, view)
			if err != nil {
				return err
			}
			printSnapshot(cmd.OutOrStdout(), s)
			return nil
		},
	}
	cmd.Flags().DurationVar(&timeout, "timeout", 10*time.Second, "give up after this long")
	return cmd
}

// fetchOnce triggers one fetch and waits until it resolves.
func fetchOnce(ctx context.Context, p *presenter.Presenter, view *headlessView) (presenter.Snapshot, error) {
	p.TriggerFetch()
	for {
		select {
		case <-ctx.Done():
			return presenter.Snapshot{}, ctx.Err()
		case <-view.alerts:
			return presenter.Snapshot{}, errFetchFailed
		case s := <-view.snaps:
			if s.InFlight > 0 {
				continue
			}
			// A failure alerts before its final render.
			select {
			case <-view.alerts:
				return presenter.Snapshot{}, errFetchFailed
			default:
				return s, nil
			}
		}
	}
}

func printSnapshot(w io.Writer, s presenter.Snapshot) {
	fmt.Fprintf(w, "%s\n", s.BarTitle)
	if name := strings.TrimSpace(s.FullName); name != "" {
		fmt.Fprintf(w, "name: %s\n", name)
	}
	if s.ShowComponent {
		fmt.Fprintf(w, "component: %s\n", s.ComponentTitle)
	}
	ids := make([]string, len(s.SavedIDs))
	for i, id := range s.SavedIDs {
		ids[i] = strconv.FormatInt(id, 10)
	}
	fmt.Fprintf(w, "saved: [%s]\n", strings.Join(ids, " "))
}
