package main

import (
	"context"
	"errors"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/goodnatureofminers/blockforge-backend/internal/app"
	"github.com/goodnatureofminers/blockforge-backend/internal/logging"
	"github.com/goodnatureofminers/blockforge-backend/internal/transport"
	grpcZap "github.com/grpc-ecosystem/go-grpc-middleware/logging/zap"
	"github.com/jessevdk/go-flags"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
)

var config struct {
	Addr     string `long:"addr" env:"FORGE_API_ADDR" description:"grpc addr" default:":8000"`
	RestAddr string `long:"rest-addr" env:"FORGE_API_REST_ADDR" description:"rest addr" default:":8001"`

	App     app.Config     `group:"builder"`
	Logging logging.Config `group:"logging" namespace:"log" env-namespace:"FORGE_LOG"`
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	_ = godotenv.Load()
	if _, err := flags.ParseArgs(&config, os.Args[1:]); err != nil {
		var ferr *flags.Error
		if errors.As(err, &ferr) && ferr.Type == flags.ErrHelp {
			return
		}
		panic("failed to parse arguments: " + err.Error())
	}

	logger, err := logging.New(config.Logging)
	if err != nil {
		panic("can't initialize zap logger: " + err.Error())
	}
	defer func() {
		_ = logger.Sync()
	}()
	grpcZap.ReplaceGrpcLoggerV2(logger)

	if err := run(ctx, logger); err != nil {
		logger.Fatal("forge-api stopped", zap.Error(err))
	}
}

func run(ctx context.Context, logger *zap.Logger) error {
	builder, err := app.New(ctx, config.App, logger)
	if err != nil {
		return err
	}
	defer builder.Close()
	builder.Start(ctx)

	grpcServer := transport.NewGRPCServer(logger, transport.NewBuilderHandler(builder.Service))
	socket, err := net.Listen("tcp", config.Addr)
	if err != nil {
		return err
	}
	go func() {
		if serveErr := grpcServer.Serve(socket); serveErr != nil {
			logger.Error("Start GRPC server", zap.Error(serveErr))
		}
	}()
	go func() {
		<-ctx.Done()
		logger.Info("Shutting down gRPC server")
		grpcServer.GracefulStop()
	}()

	conn, err := grpc.NewClient(config.Addr, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		return err
	}
	defer func() {
		_ = conn.Close()
	}()
	gw, err := transport.NewGateway(transport.NewBuilderClient(conn))
	if err != nil {
		return err
	}

	s := &http.Server{
		Addr:              config.RestAddr,
		Handler:           gw,
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		// deployments wait for hardhat or a receipt
		WriteTimeout:   5 * time.Minute,
		IdleTimeout:    60 * time.Second,
		MaxHeaderBytes: http.DefaultMaxHeaderBytes,
	}
	go func() {
		<-ctx.Done()
		logger.Info("Shutting down the http server")
		if err := s.Shutdown(context.Background()); err != nil {
			logger.Error("Failed to shutdown http server", zap.Error(err))
		}
	}()

	logger.Info("Starting HTTP server", zap.String("addr", config.RestAddr), zap.String("grpc_addr", config.Addr))
	if err := s.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
