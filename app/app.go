package app

import (
	"context"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/jomatheusdev/bd-poo-biblioteca/config"
	"github.com/jomatheusdev/bd-poo-biblioteca/internal/handler"
	"github.com/jomatheusdev/bd-poo-biblioteca/internal/repository"
	"github.com/jomatheusdev/bd-poo-biblioteca/internal/server"
	"github.com/jomatheusdev/bd-poo-biblioteca/internal/service"
	"github.com/jomatheusdev/bd-poo-biblioteca/migrations"
	"github.com/jomatheusdev/bd-poo-biblioteca/pkg/logger"
	"github.com/jomatheusdev/bd-poo-biblioteca/pkg/postgres"
)

func Run(cfg *config.Config) {
	log := logger.NewLogger(cfg.Log, "biblioteca")

	db, err := postgres.NewPostgresDB(context.Background(), &cfg.Database, migrations.MigrationFiles)
	if err != nil {
		log.Fatal("db init", zap.Error(err))
	}

	usuarios, err := repository.NewUsuarioRepository(db, cfg.Database.ConnectTimeout, log)
	if err != nil {
		log.Fatal("usuario repo", zap.Error(err))
	}
	emprestimos, err := repository.NewEmprestimoRepository(db, cfg.Database.ConnectTimeout, log)
	if err != nil {
		log.Fatal("emprestimo repo", zap.Error(err))
	}

	svc := service.NewService(usuarios, emprestimos, cfg.Emprestimo.DiasPadrao, log)
	h := handler.New(svc, svc, log)

	srv := server.NewServer(cfg.Server, h.NewRouter())
	log.Info("http server start ON: ",
		zap.String("addr",
			net.JoinHostPort(cfg.Server.Host, cfg.Server.Port)))
	go func() {
		if err := srv.Run(); err != nil {
			log.Error("server run", zap.Error(err))
		}
	}()

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM, syscall.SIGINT)
	termSig := <-sig

	log.Debug("Graceful shutdown", zap.Any("signal", termSig))

	closeCtx, cancel := context.WithTimeout(context.Background(), time.Second*5)
	defer cancel()

	if err = srv.Stop(closeCtx); err != nil {
		log.DPanic("srv.Stop", zap.Error(err))
	}
	_ = db.Close()
	log.Info("Graceful shutdown finished")
}
