package main

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"
	_ "time/tzdata"

	"github.com/go-faster/errors"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/google/uuid"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/wichananm65/product-catalogue/internal/catalogue"
	"github.com/wichananm65/product-catalogue/internal/category"
	"github.com/wichananm65/product-catalogue/internal/clock"
	"github.com/wichananm65/product-catalogue/internal/config"
	"github.com/wichananm65/product-catalogue/internal/product"
	"github.com/wichananm65/product-catalogue/internal/session"
	"golang.org/x/sync/errgroup"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	v := config.NewViper()
	root := newRootCmd(v)
	if err := root.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func newRootCmd(v *viper.Viper) *cobra.Command {
	serve := newServeCmd(v)
	root := &cobra.Command{
		Use:           "catalogue",
		Short:         "Product catalogue: search, filter and page through a remote product list",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          serve.RunE,
	}

	root.PersistentFlags().String("products-url", "", "products API endpoint")
	root.PersistentFlags().String("source", "", "catalogue source: http or postgres")
	_ = v.BindPFlag(config.KeyProductsURL, root.PersistentFlags().Lookup("products-url"))
	_ = v.BindPFlag(config.KeySource, root.PersistentFlags().Lookup("source"))

	root.AddCommand(serve, newBrowseCmd(v))
	return root
}

func newServeCmd(v *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the catalogue HTTP API",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd.Context(), config.Load(v))
		},
	}
	cmd.Flags().String("addr", "", "listen address")
	_ = v.BindPFlag(config.KeyAddr, cmd.Flags().Lookup("addr"))
	return cmd
}

func runServe(ctx context.Context, cfg config.Config) error {
	source, closeSource, err := openSource(cfg)
	if err != nil {
		return err
	}
	defer closeSource()

	loc, err := time.LoadLocation(cfg.TimeZone)
	if err != nil {
		return errors.Wrapf(err, "load time zone %q", cfg.TimeZone)
	}

	secret := cfg.JWTSecret
	if secret == "" {
		secret = uuid.NewString()
		log.Println("warning: JWT_SECRET is not set; session tokens will not survive a restart")
	}

	productRepo := product.NewInMemoryRepository(nil)
	loader := product.NewLoader(source, productRepo)
	productService := product.NewService(productRepo, loader)
	productHandler := product.NewHandler(productService)

	catalogueHandler := catalogue.NewHandler(productService)
	categoryHandler := category.NewHandler(category.NewService(category.NewStaticRepository()))

	sessionService := session.NewService(session.NewInMemoryRepository(), productService, []byte(secret))
	sessionHandler := session.NewHandler(sessionService)

	clk := clock.New(loc)
	clockHandler := clock.NewHandler(clk)

	app := fiber.New(fiber.Config{DisableStartupMessage: true})
	setupMiddleware(app)

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})
	productHandler.RegisterPublicRoutes(app)
	catalogueHandler.RegisterPublicRoutes(app)
	categoryHandler.RegisterPublicRoutes(app)
	clockHandler.RegisterPublicRoutes(app)
	sessionHandler.RegisterPublicRoutes(app)
	sessionHandler.RegisterProtectedRoutes(app.Group("/api/v1/catalogue", session.Middleware([]byte(secret))))

	// The fetch cannot be interrupted once sent, so shutdown does not wait for it.
	go loader.Load(ctx)

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return clk.Run(ctx, time.Second)
	})
	g.Go(func() error {
		log.Printf("starting server on %s", cfg.Addr)
		return app.Listen(cfg.Addr)
	})
	g.Go(func() error {
		<-ctx.Done()
		log.Println("shutting down")
		return app.ShutdownWithTimeout(15 * time.Second)
	})
	return g.Wait()
}

func setupMiddleware(app *fiber.App) {
	app.Use(recover.New())
	app.Use(logger.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,HEAD,OPTIONS",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	}))
}

// openSource returns the configured upstream and a func releasing it.
func openSource(cfg config.Config) (product.Source, func(), error) {
	switch cfg.Source {
	case config.SourceHTTP, "":
		return product.NewHTTPSource(cfg.ProductsURL), func() {}, nil
	case config.SourcePostgres:
		db, err := openDB(cfg.DatabaseURL)
		if err != nil {
			return nil, nil, err
		}
		return product.NewPostgresSource(db), func() { _ = db.Close() }, nil
	default:
		return nil, nil, fmt.Errorf("unknown catalogue source %q", cfg.Source)
	}
}

func openDB(dbURL string) (*sql.DB, error) {
	if dbURL == "" {
		return nil, errors.New("DATABASE_URL is not set")
	}

	db, err := sql.Open("pgx", dbURL)
	if err != nil {
		return nil, errors.Wrap(err, "open database")
	}
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, errors.Wrap(err, "ping database")
	}
	return db, nil
}
