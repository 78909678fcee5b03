package main

import (
	"context"
	"os"
	"path"
	"runtime"
	"time"

	"github.com/qixdigital/ad-intelligence-api/infrastructure/database/postgres"
	"github.com/qixdigital/ad-intelligence-api/infrastructure/integrator/meta"
	"github.com/qixdigital/ad-intelligence-api/infrastructure/integrator/meta/metaclient"
	"github.com/qixdigital/ad-intelligence-api/infrastructure/integrator/synthetic"
	"github.com/qixdigital/ad-intelligence-api/infrastructure/repository"
	"github.com/qixdigital/ad-intelligence-api/internal/api"
	"github.com/qixdigital/ad-intelligence-api/internal/config"
	"github.com/qixdigital/ad-intelligence-api/internal/domain"
	"github.com/qixdigital/ad-intelligence-api/internal/scheduler"
	"github.com/qixdigital/ad-intelligence-api/internal/usecases/aggregating"
	"github.com/qixdigital/ad-intelligence-api/internal/usecases/authenticating"
	"github.com/qixdigital/ad-intelligence-api/internal/usecases/connecting"
	"github.com/qixdigital/ad-intelligence-api/internal/usecases/syncing"
	"github.com/sirupsen/logrus"
)

func main() {
	// Inicializa configuração de logs
	configureLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	// Define o nível de log com base na configuração
	logLevel, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		logrus.Warnf("Nível de log inválido: %s, usando 'info'", cfg.App.LogLevel)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)
	logrus.Infof("Nível de log configurado para: %s", logLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pgConn := pgconn(ctx, cfg.Database)
	defer pgConn.Close()

	tokenRepo := repository.NewPlatformTokenRepository(pgConn)
	accountRepo := repository.NewAdAccountRepository(pgConn)
	campaignRepo := repository.NewCampaignRepository(pgConn)
	snapshotRepo := repository.NewSpendSnapshotRepository(pgConn)

	authenticator := authenticating.NewService(cfg)

	metaClient := metaclient.NewClient(cfg)
	metaIntegrator := meta.New(cfg, metaClient)

	connector := connecting.NewService(cfg, metaClient, metaIntegrator, tokenRepo, accountRepo)
	syncer := syncing.NewService(cfg, metaIntegrator, connector, accountRepo, campaignRepo)

	aggregator := aggregating.NewService(
		statsProvider(cfg, metaIntegrator, connector),
		campaignRepo,
		snapshotRepo,
	)

	// Inicializa os agendadores de sincronização e ingestão
	hierarchySyncService := scheduler.NewHierarchySyncService(syncer, cfg)
	spendIngestionService := scheduler.NewSpendIngestionService(aggregator, cfg)

	if err := hierarchySyncService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de sincronização hierárquica")
	} else {
		logrus.Info("Agendador de sincronização hierárquica iniciado com sucesso")
	}

	if err := spendIngestionService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de ingestão de gasto")
	} else {
		logrus.Info("Agendador de ingestão de gasto iniciado com sucesso")
	}

	server, err := api.New(
		cfg,
		connector,
		syncer,
		aggregator,
		authenticator,
		hierarchySyncService,
		spendIngestionService,
	)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// statsProvider escolhe o provedor de métricas diárias conforme a
// configuração: o da plataforma ou o sintético para ambientes de demonstração
func statsProvider(cfg *config.Config, integrator *meta.MetaIntegrator, connector connecting.Connector) aggregating.StatsProvider {
	if cfg.SpendIngestion.Provider == config.ProviderSynthetic {
		logrus.Info("Usando provedor sintético de métricas de gasto")
		return synthetic.New(cfg.SpendIngestion.Currency)
	}

	tokens := func() (string, error) {
		token, err := connector.GetValidToken(cfg.SpendIngestion.SyncUserID, domain.PlatformMeta)
		if err != nil {
			return "", err
		}
		return token.AccessToken, nil
	}

	return meta.NewStatsProvider(integrator, tokens, cfg.SpendIngestion.Currency)
}

// configureLogger configura o formato e comportamento dos logs
func configureLogger() {
	_, file, _, _ := runtime.Caller(0)
	dir := path.Dir(file)
	os.Chdir(dir)

	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}

// pgconn cria uma conexão com o banco de dados
func pgconn(ctx context.Context, dbConfig config.Database) *postgres.Connection {
	conn, err := postgres.NewConnection(ctx, dbConfig)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}

	err = conn.Ping(ctx)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao testar conexão com PostgreSQL")
	}

	logrus.Info("Conexão com PostgreSQL estabelecida com sucesso")
	return conn
}
