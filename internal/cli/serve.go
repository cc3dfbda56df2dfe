package cli

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/spf13/cobra"

	"github.com/adproof/adproof/internal/server"
	"github.com/adproof/adproof/pkg/cache"
	"github.com/adproof/adproof/pkg/pipeline"
	"github.com/adproof/adproof/pkg/store"
)

// serveOpts holds the command-line flags for the serve command.
type serveOpts struct {
	addr      string // listen address
	cacheKind string // result cache backend: file, memory, redis, none
	redisAddr string // redis address for --cache=redis
	mongoURI  string // mongo connection string (enables layout storage)
	mongoDB   string // mongo database name
}

// serveCommand creates the serve command running the HTTP API.
//
// Backends:
//   - cache: file (default), memory, redis, none
//   - storage: in-memory by default, MongoDB when --mongo-uri is set
func (c *CLI) serveCommand() *cobra.Command {
	var opts serveOpts

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the validation and adaptation HTTP API",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := withLogger(cmd.Context(), c.Logger)
			return c.runServe(ctx, &opts)
		},
	}

	cmd.Flags().StringVar(&opts.addr, "addr", ":8080", "listen address")
	cmd.Flags().StringVar(&opts.cacheKind, "cache", "file", "result cache backend: file, memory, redis, none")
	cmd.Flags().StringVar(&opts.redisAddr, "redis-addr", "localhost:6379", "redis address for --cache=redis")
	cmd.Flags().StringVar(&opts.mongoURI, "mongo-uri", "", "MongoDB connection string (enables persistent layout storage)")
	cmd.Flags().StringVar(&opts.mongoDB, "mongo-db", store.DefaultDatabase, "MongoDB database name")

	return cmd
}

func (c *CLI) runServe(ctx context.Context, opts *serveOpts) error {
	logger := loggerFromContext(ctx)

	resultCache, err := c.serverCache(ctx, opts)
	if err != nil {
		return fmt.Errorf("create cache: %w", err)
	}

	st, err := c.serverStore(ctx, opts)
	if err != nil {
		return fmt.Errorf("create store: %w", err)
	}
	defer func() {
		closeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = st.Close(closeCtx)
	}()

	runner := pipeline.NewRunner(resultCache, nil, logger)
	defer runner.Close()

	srv := server.New(server.Config{
		Runner: runner,
		Store:  st,
		Logger: logger,
	})

	httpSrv := &http.Server{
		Addr:              opts.addr,
		Handler:           srv.Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("listening", "addr", opts.addr, "cache", opts.cacheKind)
		errCh <- httpSrv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		logger.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return httpSrv.Shutdown(shutdownCtx)
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}

// serverCache builds the result cache for the requested backend.
func (c *CLI) serverCache(ctx context.Context, opts *serveOpts) (cache.Cache, error) {
	switch opts.cacheKind {
	case "none":
		return cache.NewNullCache(), nil
	case "memory":
		return cache.NewMemoryCache(), nil
	case "redis":
		return cache.NewRedisCache(ctx, cache.RedisOptions{Addr: opts.redisAddr})
	case "file":
		dir, err := cacheDir()
		if err != nil {
			return cache.NewNullCache(), nil
		}
		return cache.NewFileCache(dir)
	default:
		return nil, fmt.Errorf("unknown cache backend: %s (must be file, memory, redis or none)", opts.cacheKind)
	}
}

// serverStore builds the layout store; MongoDB when configured, otherwise
// an in-memory store.
func (c *CLI) serverStore(ctx context.Context, opts *serveOpts) (store.Store, error) {
	if opts.mongoURI == "" {
		return store.NewMemoryStore(), nil
	}
	connectCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	return store.NewMongoStore(connectCtx, store.MongoOptions{
		URI:      opts.mongoURI,
		Database: opts.mongoDB,
	})
}
