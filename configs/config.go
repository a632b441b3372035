package config

import (
	"os"
	"path/filepath"
	"strconv"

	"github.com/gofrs/uuid"
	log "github.com/sirupsen/logrus"

	"github.com/joho/godotenv"
)

// Default economy settings, overridable from the environment.
const (
	DefaultStartingBalance = 10
	DefaultTicketCost      = 1
	DefaultLinePrize       = 5
	DefaultBingoMultiplier = 4
	DefaultWalletPath      = "data/wallet.json"
)

var InstanceId string

// Settings carries the economy and storage configuration for one run.
type Settings struct {
	StartingBalance int
	TicketCost      int
	LinePrize       int
	BingoPrize      int
	WalletPath      string
}

func LoadEnv(service string) {
	err := godotenv.Load("./.env")
	if err != nil {
		// .env is optional for local play, plain env vars still apply
		log.Debugf("no .env file loaded for %s: %v", service, err)
		return
	}
	log.Info(".env file loaded.")
}

// LoadSettings reads the economy settings from the environment, falling
// back to the defaults above. Negative values are clamped to zero.
func LoadSettings() Settings {
	s := Settings{
		StartingBalance: envInt("BINGO_STARTING_BALANCE", DefaultStartingBalance),
		TicketCost:      envInt("BINGO_TICKET_COST", DefaultTicketCost),
		LinePrize:       envInt("BINGO_LINE_PRIZE", DefaultLinePrize),
		WalletPath:      os.Getenv("BINGO_WALLET_PATH"),
	}
	s.BingoPrize = envInt("BINGO_BINGO_PRIZE", s.LinePrize*DefaultBingoMultiplier)
	if s.WalletPath == "" {
		s.WalletPath = DefaultWalletPath
	}
	if s.StartingBalance < 0 {
		s.StartingBalance = 0
	}
	if s.TicketCost < 0 {
		s.TicketCost = 0
	}
	if s.LinePrize < 0 {
		s.LinePrize = 0
	}
	if s.BingoPrize < 0 {
		s.BingoPrize = 0
	}
	return s
}

func envInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		log.Warnf("invalid %s=%q, using default %d", key, v, fallback)
		return fallback
	}
	return n
}

func CreateUniqueInstance(service string) string {
	id, err := uuid.NewV4() // instance identifier
	if err != nil {
		log.Errorf("error generating instanceId: %s", err)
		os.Exit(0)
	}
	InstanceId = id.String()
	log.Infof(service+" session with Instance ID: %s is ready", id)
	return id.String()
}

func GetInstanceId() string {
	return InstanceId
}

// Logging sends log output to a file so the interactive terminal stays
// clean for the game board.
func Logging(service string) {
	logFolder := ".l_g"

	_, err := os.Stat(logFolder)
	if os.IsNotExist(err) {
		err = os.Mkdir(logFolder, 0755)
		if err != nil {
			log.Warnf("unable to create folder for log %s", err)
			return
		}
	}

	logFilePath := filepath.Join(logFolder, service+".log")

	file, err := os.OpenFile(logFilePath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		log.Fatal("Failed to open log file:", err)
	}

	log.SetOutput(file)

	log.SetFormatter(&log.TextFormatter{})
	log.SetLevel(log.InfoLevel)

	log.Infof("log to file started for service: %s", service)
}
