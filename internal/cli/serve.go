package cli

import (
	"context"
	"errors"
	"net/http"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"github.com/spotlight-tour/spotlight/internal/api"
	"github.com/spotlight-tour/spotlight/pkg/geom"
	"github.com/spotlight-tour/spotlight/pkg/host"
	"github.com/spotlight-tour/spotlight/pkg/tour"
	"github.com/spotlight-tour/spotlight/pkg/tourio"
)

// serveCommand creates the serve command running the HTTP control API.
func (c *CLI) serveCommand() *cobra.Command {
	var (
		addr     string
		watch    bool
		tourFile string
	)
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP control API",
		Long: `Run the HTTP control API.

The server loads the configured tour and exposes step editing, playback
control, and rendered overlay snapshots over JSON. With --tour-file the
steps come from a JSON or YAML tour document instead of the settings
store. With --watch the objects file, and the tour file when given, are
hot-reloaded on change so edits show up without a restart.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runServe(cmd.Context(), addr, watch, tourFile)
		},
	}
	cmd.Flags().StringVar(&addr, "addr", "", "listen address (default from config)")
	cmd.Flags().BoolVar(&watch, "watch", false, "hot-reload watched files on change")
	cmd.Flags().StringVar(&tourFile, "tour-file", "", "load steps from a tour document instead of the store")
	return cmd
}

func (c *CLI) runServe(ctx context.Context, addr string, watch bool, tourFile string) error {
	cfg, err := c.loadConfig()
	if err != nil {
		return err
	}
	if addr == "" {
		addr = cfg.Serve.Addr
	}

	store, err := c.openStore(ctx, cfg)
	if err != nil {
		return err
	}
	defer store.Close()

	objects := &reloadableObjects{}
	source, err := c.openObjects(cfg)
	if err != nil {
		return err
	}
	objects.set(source)
	gw := host.NewGateway(store, objects)

	var seq tour.Sequence
	if tourFile != "" {
		seq, err = tourio.ImportFile(tourFile)
	} else {
		seq, err = tour.LoadSequence(ctx, gw)
	}
	if err != nil {
		return err
	}

	player := tour.NewPlayer()
	defer player.Close()

	apiStore := tour.NewStore(seq)
	srv := api.New(api.Config{
		Logger:    c.Logger,
		Store:     apiStore,
		Player:    player,
		Gateway:   gw,
		Container: cfg.containerRect(),
	})

	if watch {
		if cfg.ObjectsFile != "" {
			stop, err := c.watchObjects(ctx, cfg.ObjectsFile, objects)
			if err != nil {
				return err
			}
			defer stop()
		}
		if tourFile != "" {
			stop, err := c.watchTourFile(ctx, tourFile, apiStore, player, gw, cfg.containerRect())
			if err != nil {
				return err
			}
			defer stop()
		}
	}

	httpSrv := &http.Server{
		Addr:              addr,
		Handler:           srv.Router(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = httpSrv.Shutdown(shutdownCtx)
	}()

	c.Logger.Info("serving control API", "addr", addr, "tour", cfg.Tour, "backend", cfg.Backend)
	if err := httpSrv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// watchObjects hot-reloads the objects file into target.
func (c *CLI) watchObjects(ctx context.Context, path string, target *reloadableObjects) (stop func(), err error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := watcher.Add(path); err != nil {
		watcher.Close()
		return nil, err
	}

	go func() {
		for {
			select {
			case <-ctx.Done():
				return
			case event, ok := <-watcher.Events:
				if !ok {
					return
				}
				if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
					continue
				}
				om, err := host.ReadObjectsFile(path)
				if err != nil {
					c.Logger.Warn("reload objects failed", "path", path, "err", err)
					continue
				}
				target.set(om)
				c.Logger.Info("reloaded objects", "path", path)
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				c.Logger.Warn("objects watcher error", "err", err)
			}
		}
	}()

	return func() { watcher.Close() }, nil
}

// watchTourFile hot-reloads the tour document into the editing store and,
// when playback is active, reloads the player with the current index
// clamped to the new sequence length.
func (c *CLI) watchTourFile(ctx context.Context, path string, store *tour.Store, player *tour.Player, gw host.Gateway, container geom.Rect) (stop func(), err error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := watcher.Add(path); err != nil {
		watcher.Close()
		return nil, err
	}

	go func() {
		for {
			select {
			case <-ctx.Done():
				return
			case event, ok := <-watcher.Events:
				if !ok {
					return
				}
				if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
					continue
				}
				seq, err := tourio.ImportFile(path)
				if err != nil {
					c.Logger.Warn("reload tour failed", "path", path, "err", err)
					continue
				}
				store.Replace(seq)
				if state := player.State(); state.Phase != tour.PhaseIdle {
					idx := state.Index
					if idx >= seq.Len() {
						idx = seq.Len() - 1
					}
					player.Load(seq, container, tour.GatewayResolver(ctx, gw))
					if idx > 0 {
						_ = player.JumpTo(idx)
					}
				}
				c.Logger.Info("reloaded tour", "path", path, "steps", seq.Len())
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				c.Logger.Warn("tour watcher error", "err", err)
			}
		}
	}()

	return func() { watcher.Close() }, nil
}

// reloadableObjects is an ObjectSource whose backing snapshot can be
// swapped at runtime.
type reloadableObjects struct {
	mu  sync.RWMutex
	src host.ObjectSource
}

func (r *reloadableObjects) set(src host.ObjectSource) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.src = src
}

func (r *reloadableObjects) ListObjects(ctx context.Context) ([]host.ContainerObject, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.src.ListObjects(ctx)
}

func (r *reloadableObjects) ObjectPosition(ctx context.Context, id string) (geom.Rect, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.src.ObjectPosition(ctx, id)
}
