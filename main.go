package main

import (
	"context"
	"os"

	firebase "firebase.google.com/go/v4"
	"github.com/hibiken/asynq"
	"github.com/katatrina/dentcare-BE/api"
	_ "github.com/katatrina/dentcare-BE/docs"
	"github.com/katatrina/dentcare-BE/internal/alert"
	"github.com/katatrina/dentcare-BE/internal/event"
	"github.com/katatrina/dentcare-BE/internal/firedb"
	"github.com/katatrina/dentcare-BE/internal/mailer"
	"github.com/katatrina/dentcare-BE/internal/notification"
	"github.com/katatrina/dentcare-BE/internal/reminder"
	"github.com/katatrina/dentcare-BE/internal/sms"
	"github.com/katatrina/dentcare-BE/internal/util"
	"github.com/katatrina/dentcare-BE/internal/worker"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"google.golang.org/api/option"

	"github.com/rs/zerolog/log"
)

//	@title			DentCare Clinic API
//	@version		1.0.0
//	@description	API documentation for the DentCare clinic management application

//	@host		localhost:8080
//	@BasePath	/v1
//	@schemes	http https

//	@securityDefinitions.apikey	accessToken
//	@in							header
//	@name						Authorization
//	@description				Type "Bearer" followed by a space and JWT token.
func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	// Load configurations
	config, err := util.LoadConfig("./app.env")
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config file 😣")
	}

	log.Info().Msg("configurations loaded successfully ✅")

	ctx := context.Background()

	// Connect to Firestore
	firebaseApp, err := firebase.NewApp(ctx, nil, option.WithCredentialsFile(config.FirebaseCredentialsFile))
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize firebase app 😣")
	}

	store, err := firedb.NewStore(ctx, firebaseApp)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to firestore 😣")
	}
	log.Info().Msg("connected to firestore ✅")

	redisDb := redis.NewClient(&redis.Options{
		Addr:     config.RedisServerAddress,
		Password: "", // no password set
		DB:       0,  // use default DB
	})

	redisOpt := asynq.RedisClientOpt{
		Addr: config.RedisServerAddress,
	}

	mailService, err := mailer.NewGmailSender(config.GmailSMTPUsername, config.GmailSMTPPassword)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to create mailer service 😣")
	}

	smsService := sms.NewClient(config.SMSRelayURL, config.SMSRelayAPIKey)

	var alerter alert.Alerter = alert.NopAlerter{}
	if config.DiscordBotToken != "" {
		alerter, err = alert.NewDiscordAlerter(config.DiscordBotToken, config.DiscordOpsChannelID)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to create discord alerter 😣")
		}
	}

	taskDistributor := worker.NewTaskDistributor(redisOpt)
	taskInspector := worker.NewTaskInspector(redisOpt)

	go runTaskProcessor(redisOpt, store, mailService, smsService)

	eventSender := event.NewSSEServer()

	// Notification service: shared snapshot subscriptions + per-user centers
	notificationService := notification.NewService(
		store,
		notification.NewFirestoreMarkerStore(store),
		notification.NewRedisMarkerCache(redisDb),
		eventSender,
		config.NotificationPageSize,
	)
	if err = notificationService.Start(ctx); err != nil {
		log.Fatal().Err(err).Msg("failed to start notification service 😣")
	}

	reminderScheduler, err := reminder.NewScheduler(store, taskDistributor, config.ReminderLeadTime)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to create reminder scheduler 😣")
	}
	if err = reminderScheduler.Start(); err != nil {
		log.Fatal().Err(err).Msg("failed to start reminder scheduler 😣")
	}

	runHTTPServer(&config, store, taskDistributor, taskInspector, notificationService, eventSender, alerter)
}

func runTaskProcessor(redisOpt asynq.RedisClientOpt, store *firedb.Store, mailService mailer.EmailSender, smsService *sms.Client) {
	taskProcessor := worker.NewRedisTaskProcessor(redisOpt, store, mailService, smsService)
	log.Info().Msg("task processor started ✅")

	if err := taskProcessor.Start(); err != nil {
		log.Fatal().Err(err).Msg("failed to start task processor 😣")
	}
}

func runHTTPServer(config *util.Config, store *firedb.Store, taskDistributor worker.TaskDistributor, taskInspector worker.TaskInspector, notificationService *notification.Service, eventSender event.EventSender, alerter alert.Alerter) {
	server, err := api.NewServer(store, taskDistributor, taskInspector, config, notificationService, eventSender, alerter)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to create HTTP server 😣")
	}

	err = server.Start(config.HTTPServerAddress)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to start HTTP server 😣")
	}
}
