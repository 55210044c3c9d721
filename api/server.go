package api

import (
	"context"
	"fmt"
	"os"

	"github.com/alex-pricope/feedback-arcade/api/controllers"
	"github.com/alex-pricope/feedback-arcade/api/transport"
	"github.com/alex-pricope/feedback-arcade/feedback"
	"github.com/alex-pricope/feedback-arcade/game"
	"github.com/alex-pricope/feedback-arcade/logging"
	"github.com/alex-pricope/feedback-arcade/scheduler"
	"github.com/alex-pricope/feedback-arcade/storage"
	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"
	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	ginadapter "github.com/awslabs/aws-lambda-go-api-proxy/gin"
	"github.com/gin-gonic/gin"
)

type Server struct {
	config *Config
}

func NewServer(config *Config) *Server {
	return &Server{
		config: config,
	}
}

func (s *Server) Start() error {
	ctx := context.Background()

	scores, closeScores, err := OpenScoreStorage(ctx, s.config.StorageConfig)
	if err != nil {
		return err
	}
	defer closeScores()

	r, shutdown := s.Router(scores)
	defer shutdown()

	//Do not run lambda helper locally
	if os.Getenv("APP_ENV") == "local" {
		return startLocal(r, s.config.Port)
	}
	startLambda(r)
	return nil
}

// Router wires every controller onto a new engine. The returned func stops
// the timers of all live sessions.
func (s *Server) Router(scores storage.ScoreStorage) (*gin.Engine, func()) {
	r := transport.NewRouter(s.config.GinMode)

	formController := controllers.NewFormController(
		feedback.WithPopupDuration(s.config.PopupDuration),
	)
	formController.RegisterRoutes(r)
	gameController := controllers.NewGameController(scores,
		game.WithMismatchDelay(s.config.MismatchDelay),
		game.WithTickInterval(s.config.TickInterval),
	)
	gameController.RegisterRoutes(r)
	scoreController := controllers.NewScoreController(scores)
	scoreController.RegisterRoutes(r)

	sched := scheduler.Real()
	formController.EvictIdle(sched, s.config.IdleTimeout, s.config.SweepInterval)
	gameController.EvictIdle(sched, s.config.IdleTimeout, s.config.SweepInterval)

	return r, func() {
		formController.Close()
		gameController.Close()
	}
}

// OpenScoreStorage builds the best-score store selected by cfg.Driver.
func OpenScoreStorage(ctx context.Context, cfg StorageConfig) (storage.ScoreStorage, func(), error) {
	switch cfg.Driver {
	case DriverMemory, "":
		logging.Log.Info("SCORES: using in-memory store")
		return storage.NewMemoryScoreStorage(), func() {}, nil

	case DriverSQLite:
		s, err := storage.OpenSQLiteScoreStorage(ctx, cfg.SQLitePath)
		if err != nil {
			logging.Log.Errorf("failed to open sqlite store: %v", err)
			return nil, nil, err
		}
		return s, func() { _ = s.Close() }, nil

	case DriverDynamo:
		awsCfg, err := awsconfig.LoadDefaultConfig(ctx)
		if err != nil {
			logging.Log.Errorf("failed to load AWS config: %v", err)
			return nil, nil, fmt.Errorf("load AWS config: %w", err)
		}
		client := dynamodb.NewFromConfig(awsCfg, func(o *dynamodb.Options) {
			if cfg.Endpoint != "" {
				o.BaseEndpoint = aws.String(cfg.Endpoint)
			}
		})
		return &storage.DynamoScoreStorage{
			Client:    client,
			TableName: cfg.TableNameBestScores,
		}, func() {}, nil
	}
	return nil, nil, fmt.Errorf("unknown storage driver %q", cfg.Driver)
}

// StartLambda sets up for AWS Lambda
func startLambda(engine *gin.Engine) {
	ginLambda := ginadapter.NewV2(engine)

	handler := func(ctx context.Context, req events.APIGatewayV2HTTPRequest) (events.APIGatewayV2HTTPResponse, error) {
		logging.Log.Infof("Lambda handler triggered on path: %s", req.RawPath)
		return ginLambda.ProxyWithContext(ctx, req)
	}

	logging.Log.Info("Starting lambda")
	lambda.Start(handler)
}

// StartLocal starts a normal HTTP server on the configured port
func startLocal(engine *gin.Engine, port int) error {
	logging.Log.Info(fmt.Sprintf("Starting server on http://localhost:%d", port))

	if err := engine.Run(fmt.Sprintf(":%d", port)); err != nil {
		logging.Log.Errorf("Failed to run server: %v", err)
		return err
	}
	return nil
}
