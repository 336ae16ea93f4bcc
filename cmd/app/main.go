package main

import (
	"database/sql"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"strings"

	"rescue/cmd"
	httpadapter "rescue/internal/adapters/in/http"
	kafkaadapter "rescue/internal/adapters/out/kafka"
	"rescue/internal/adapters/out/postgres/dispatchrepo"
	"rescue/internal/adapters/out/postgres/invoicerepo"
	"rescue/internal/adapters/out/postgres/orderrepo"
	"rescue/internal/adapters/out/postgres/vehiclerepo"
	"rescue/internal/jobs"
	"rescue/internal/presence"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	_ "github.com/lib/pq"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	configs := getConfigs()
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	gormDB := openDatabase(configs)

	kafkaClient := kafkaadapter.NewClient(
		strings.Split(configs.KafkaHost, ","),
		configs.KafkaConsumerGroup,
		logger,
	)
	if err := kafkaClient.Connect(
		configs.KafkaNotificationsTopic,
		configs.KafkaConversationsTopic,
		presence.QueryTopic,
		presence.ReplyTopic,
		presence.ConnectionsTopic,
	); err != nil {
		log.Fatalf("Kafka connect failed: %v", err)
	}
	defer kafkaClient.Close()

	publisher := kafkaadapter.NewNotificationPublisher(kafkaClient, configs.KafkaNotificationsTopic)
	conversations := kafkaadapter.NewConversationGateway(kafkaClient, configs.KafkaConversationsTopic)
	bus := kafkaadapter.NewPresenceBus(kafkaClient)

	tracker := presence.NewTracker()
	responder := presence.NewResponder(bus, tracker, logger)
	if err := responder.Start(); err != nil {
		log.Fatalf("Presence responder failed to start: %v", err)
	}

	bridge, err := presence.NewBridge(bus, presence.DefaultTimeout, logger)
	if err != nil {
		log.Fatalf("Presence bridge failed to start: %v", err)
	}

	root := cmd.NewCompositionRoot(configs, gormDB, publisher, conversations, logger)

	jobManager := jobs.NewJobManager(root.CreateSweepOverdueInvoicesCommandHandler(), logger)
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Jobs failed to start: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(&root, bridge, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	config := cmd.Config{
		HTTPPort:                goDotEnvVariable("HTTP_PORT"),
		DBHost:                  goDotEnvVariable("DB_HOST"),
		DBPort:                  goDotEnvVariable("DB_PORT"),
		DBUser:                  goDotEnvVariable("DB_USER"),
		DBPassword:              goDotEnvVariable("DB_PASSWORD"),
		DBName:                  goDotEnvVariable("DB_NAME"),
		DBSslMode:               goDotEnvVariable("DB_SSLMODE"),
		KafkaHost:               goDotEnvVariable("KAFKA_HOST"),
		KafkaConsumerGroup:      goDotEnvVariable("KAFKA_CONSUMER_GROUP"),
		KafkaNotificationsTopic: goDotEnvVariable("KAFKA_NOTIFICATIONS_TOPIC"),
		KafkaConversationsTopic: goDotEnvVariable("KAFKA_CONVERSATIONS_TOPIC"),
	}
	return config
}

func goDotEnvVariable(key string) string {
	err := godotenv.Load(".env")
	if err != nil {
		log.Fatalf("Error loading .env file")
	}
	return os.Getenv(key)
}

// openDatabase connects through lib/pq and hands the connection to gorm, so
// repository code sees typed pq errors for constraint violations.
func openDatabase(configs cmd.Config) *gorm.DB {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser,
		configs.DBPassword, configs.DBName, configs.DBSslMode)

	sqlDB, err := sql.Open("postgres", dsn)
	if err != nil {
		log.Fatalf("Database open failed: %v", err)
	}

	gormDB, err := gorm.Open(postgresdriver.New(postgresdriver.Config{Conn: sqlDB}), &gorm.Config{})
	if err != nil {
		log.Fatalf("Database connect failed: %v", err)
	}

	err = gormDB.AutoMigrate(
		&orderrepo.OrderDTO{},
		&vehiclerepo.VehicleDTO{},
		&dispatchrepo.AssignmentDTO{},
		&invoicerepo.InvoiceDTO{},
	)
	if err != nil {
		log.Fatalf("Database migration failed: %v", err)
	}

	return gormDB
}

func startWebServer(root *cmd.CompositionRoot, bridge *presence.Bridge, port string) {
	e := echo.New()
	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})

	server := httpadapter.NewServer(httpadapter.Handlers{
		CreateOrder:        root.CreateCreateOrderCommandHandler(),
		AcceptOrder:        root.CreateAcceptOrderCommandHandler(),
		DispatchVehicle:    root.CreateDispatchVehicleCommandHandler(),
		MarkVehicleArrived: root.CreateMarkVehicleArrivedCommandHandler(),
		CompleteInspection: root.CreateCompleteInspectionCommandHandler(),
		UpdatePrice:        root.CreateUpdatePriceCommandHandler(),
		ConfirmPrice:       root.CreateConfirmPriceCommandHandler(),
		RejectPrice:        root.CreateRejectPriceCommandHandler(),
		StartRepair:        root.CreateStartRepairCommandHandler(),
		CompleteRepair:     root.CreateCompleteRepairCommandHandler(),
		CancelOrder:        root.CreateCancelOrderCommandHandler(),
		MarkInvoicePaid:    root.CreateMarkInvoicePaidCommandHandler(),
		GetOrder:           root.CreateGetOrderQueryHandler(),
		GetCompanyVehicles: root.CreateGetCompanyVehiclesQueryHandler(),
		GetOrderInvoice:    root.CreateGetOrderInvoiceQueryHandler(),
	}, bridge)
	server.RegisterRoutes(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
