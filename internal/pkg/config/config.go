package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"
)

type (
	Tasks struct {
		ReconciliationInterval  time.Duration
		CODOverdueSweepInterval time.Duration
	}

	HTTPServer struct {
		Port             string
		RequestTimeout   time.Duration // middleware timeout
		RateLimiterQPS   int           // middleware  rate limiter capacity
		RateLimiterBurst int           // middlewarerate limiter burst/refill
		PprofEnabled     bool
		PprofPort        string
	}

	Database struct {
		Host     string
		Port     string
		User     string
		Password string
		DBName   string
		SSLMode  string
	}

	Kafka struct {
		PortHealthcheck string
		Brokers         string
		Topic           string
		ConsumerGroup   string
		Sarama          Sarama
		Handlers        KafkaHandlers
	}

	Sarama struct {
		Version                   string
		ConsumerOffsetsAutocommit bool
	}

	KafkaHandlers struct {
		OrderStatusChanged OrderStatusChanged
	}

	OrderStatusChanged struct {
		ProcessTimeout time.Duration
	}

	// Settlement — константы расчета сплита. Резолвятся в снапшот
	// на каждый вызов settlement (см. internal/pkg/settings).
	Settlement struct {
		DefaultCommissionRate float64
		RiderBasePay          int64
		RiderPerKmRate        int64
		RiderEarningCap       int64
		FallbackDistanceKm    float64
		GatewayFeePercent     float64
		BonusTargetDeliveries int64
		BonusAmount           int64
		CODOverdueAmount      int64
		CODOverdueDays        int
		CODBlockedAmount      int64
		CODBlockedDays        int
	}

	Config struct {
		Tasks      Tasks
		Server     HTTPServer
		Database   Database
		Kafka      Kafka
		Settlement Settlement
	}
)

func Load() (*Config, error) {
	cfg, err := loadFromEnv()
	if err != nil {
		return nil, fmt.Errorf("environment loading: %w", err)
	}

	if err := validateConfig(cfg); err != nil {
		return nil, fmt.Errorf("validation: %w", err)
	}
	return cfg, nil
}

func loadFromEnv() (*Config, error) {
	reconciliationInterval, err := osGetEnvDuration("BACKGROUND_RECONCILIATION_INTERVAL")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	codSweepInterval, err := osGetEnvDuration("BACKGROUND_COD_OVERDUE_SWEEP_INTERVAL")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	saramaOffsetsAutocommit, err := osGetBool("KAFKA_SARAMA_OFFSETS_AUTOCOMMIT")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	orderStatusChangedTimeout, err := osGetEnvDuration("KAFKA_HANDLER_ORDER_STATUS_CHANGED_PROCESS_TIMEOUT")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	requestTimeout, err := osGetEnvDuration("MIDDLEWARE_REQUEST_TIMEOUT")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	rateLimiterQPS, err := osGetInt("MIDDLEWARE_RATE_LIMIT_QPS")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	rateLimiterBurst, err := osGetInt("MIDDLEWARE_RATE_LIMIT_BURST")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	pprofEnabled, err := osGetBool("PPROF_ENABLED")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	settlement, err := loadSettlementFromEnv()
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	return &Config{
		Tasks: Tasks{
			ReconciliationInterval:  reconciliationInterval,
			CODOverdueSweepInterval: codSweepInterval,
		},
		Server: HTTPServer{
			Port:             os.Getenv("PORT"),
			RequestTimeout:   requestTimeout,
			RateLimiterQPS:   rateLimiterQPS,
			RateLimiterBurst: rateLimiterBurst,
			PprofEnabled:     pprofEnabled,
			PprofPort:        os.Getenv("PPROF_PORT"),
		},
		Database: Database{
			Host:     os.Getenv("POSTGRES_HOST"),
			Port:     os.Getenv("POSTGRES_PORT"),
			User:     os.Getenv("POSTGRES_USER"),
			Password: os.Getenv("POSTGRES_PASSWORD"),
			DBName:   os.Getenv("POSTGRES_DB"),
			SSLMode:  os.Getenv("POSTGRES_SSLMODE"),
		},
		Kafka: Kafka{
			Brokers:         os.Getenv("KAFKA_BROKERS"),
			Topic:           os.Getenv("KAFKA_TOPIC"),
			ConsumerGroup:   os.Getenv("KAFKA_CONSUMER_GROUP"),
			PortHealthcheck: os.Getenv("KAFKA_HTTP_HEALTHCHECK_PORT"),
			Sarama: Sarama{
				Version:                   os.Getenv("KAFKA_SARAMA_VERSION"),
				ConsumerOffsetsAutocommit: saramaOffsetsAutocommit,
			},
			Handlers: KafkaHandlers{
				OrderStatusChanged: OrderStatusChanged{
					ProcessTimeout: orderStatusChangedTimeout,
				},
			},
		},
		Settlement: settlement,
	}, nil
}

func loadSettlementFromEnv() (Settlement, error) {
	commissionRate, err := osGetFloat("SETTLEMENT_DEFAULT_COMMISSION_RATE")
	if err != nil {
		return Settlement{}, err
	}

	basePay, err := osGetInt64("SETTLEMENT_RIDER_BASE_PAY")
	if err != nil {
		return Settlement{}, err
	}

	perKmRate, err := osGetInt64("SETTLEMENT_RIDER_PER_KM_RATE")
	if err != nil {
		return Settlement{}, err
	}

	earningCap, err := osGetInt64("SETTLEMENT_RIDER_EARNING_CAP")
	if err != nil {
		return Settlement{}, err
	}

	fallbackDistance, err := osGetFloat("SETTLEMENT_FALLBACK_DISTANCE_KM")
	if err != nil {
		return Settlement{}, err
	}

	gatewayFeePercent, err := osGetFloat("SETTLEMENT_GATEWAY_FEE_PERCENT")
	if err != nil {
		return Settlement{}, err
	}

	bonusTarget, err := osGetInt64("SETTLEMENT_BONUS_TARGET_DELIVERIES")
	if err != nil {
		return Settlement{}, err
	}

	bonusAmount, err := osGetInt64("SETTLEMENT_BONUS_AMOUNT")
	if err != nil {
		return Settlement{}, err
	}

	codOverdueAmount, err := osGetInt64("SETTLEMENT_COD_OVERDUE_AMOUNT")
	if err != nil {
		return Settlement{}, err
	}

	codOverdueDays, err := osGetInt("SETTLEMENT_COD_OVERDUE_DAYS")
	if err != nil {
		return Settlement{}, err
	}

	codBlockedAmount, err := osGetInt64("SETTLEMENT_COD_BLOCKED_AMOUNT")
	if err != nil {
		return Settlement{}, err
	}

	codBlockedDays, err := osGetInt("SETTLEMENT_COD_BLOCKED_DAYS")
	if err != nil {
		return Settlement{}, err
	}

	return Settlement{
		DefaultCommissionRate: commissionRate,
		RiderBasePay:          basePay,
		RiderPerKmRate:        perKmRate,
		RiderEarningCap:       earningCap,
		FallbackDistanceKm:    fallbackDistance,
		GatewayFeePercent:     gatewayFeePercent,
		BonusTargetDeliveries: bonusTarget,
		BonusAmount:           bonusAmount,
		CODOverdueAmount:      codOverdueAmount,
		CODOverdueDays:        codOverdueDays,
		CODBlockedAmount:      codBlockedAmount,
		CODBlockedDays:        codBlockedDays,
	}, nil
}

func validateConfig(cfg *Config) error {
	if cfg.Server.Port == "" {
		return errors.New("server port is required (set via PORT env variable)")
	}
	if cfg.Server.RequestTimeout == time.Duration(0) {
		return errors.New("MIDDLEWARE_REQUEST_TIMEOUT is required")
	}
	if cfg.Server.RateLimiterQPS == 0 {
		return errors.New("MIDDLEWARE_RATE_LIMIT_QPS is required")
	}
	if cfg.Server.RateLimiterBurst == 0 {
		return errors.New("MIDDLEWARE_RATE_LIMIT_BURST is required")
	}
	if cfg.Server.PprofPort == "" && cfg.Server.PprofEnabled {
		return errors.New("PprofPort is required (set via PPROF_PORT env variable)")
	}

	if cfg.Database.Host == "" {
		return errors.New("POSTGRES_HOST is required")
	}
	if cfg.Database.Port == "" {
		return errors.New("POSTGRES_PORT is required")
	}
	if cfg.Database.User == "" {
		return errors.New("POSTGRES_USER is required")
	}
	if cfg.Database.Password == "" {
		return errors.New("POSTGRES_PASSWORD is required")
	}
	if cfg.Database.DBName == "" {
		return errors.New("POSTGRES_DB is required")
	}
	if cfg.Database.SSLMode == "" {
		return errors.New("POSTGRES_SSLMODE is required")
	}

	if cfg.Tasks.ReconciliationInterval == time.Duration(0) {
		return errors.New("BACKGROUND_RECONCILIATION_INTERVAL is required")
	}
	if cfg.Tasks.CODOverdueSweepInterval == time.Duration(0) {
		return errors.New("BACKGROUND_COD_OVERDUE_SWEEP_INTERVAL is required")
	}

	if cfg.Kafka.Brokers == "" {
		return errors.New("KAFKA_BROKERS is required")
	}
	if cfg.Kafka.Topic == "" {
		return errors.New("KAFKA_TOPIC is required")
	}
	if cfg.Kafka.ConsumerGroup == "" {
		return errors.New("KAFKA_CONSUMER_GROUP is required")
	}
	if cfg.Kafka.PortHealthcheck == "" {
		return errors.New("KAFKA_HTTP_HEALTHCHECK_PORT is required")
	}

	if cfg.Kafka.Sarama.Version == "" {
		return errors.New("KAFKA_SARAMA_VERSION is required")
	}

	if cfg.Kafka.Handlers.OrderStatusChanged.ProcessTimeout == time.Duration(0) {
		return errors.New("KAFKA_HANDLER_ORDER_STATUS_CHANGED_PROCESS_TIMEOUT is required")
	}

	return validateSettlement(&cfg.Settlement)
}

func validateSettlement(cfg *Settlement) error {
	if cfg.DefaultCommissionRate <= 0 || cfg.DefaultCommissionRate >= 100 {
		return errors.New("SETTLEMENT_DEFAULT_COMMISSION_RATE must be in (0, 100)")
	}
	if cfg.RiderBasePay <= 0 {
		return errors.New("SETTLEMENT_RIDER_BASE_PAY is required")
	}
	if cfg.RiderPerKmRate <= 0 {
		return errors.New("SETTLEMENT_RIDER_PER_KM_RATE is required")
	}
	if cfg.RiderEarningCap < cfg.RiderBasePay {
		return errors.New("SETTLEMENT_RIDER_EARNING_CAP must be >= SETTLEMENT_RIDER_BASE_PAY")
	}
	if cfg.FallbackDistanceKm <= 0 {
		return errors.New("SETTLEMENT_FALLBACK_DISTANCE_KM is required")
	}
	if cfg.GatewayFeePercent < 0 || cfg.GatewayFeePercent >= 100 {
		return errors.New("SETTLEMENT_GATEWAY_FEE_PERCENT must be in [0, 100)")
	}
	if cfg.BonusTargetDeliveries <= 0 {
		return errors.New("SETTLEMENT_BONUS_TARGET_DELIVERIES is required")
	}
	if cfg.BonusAmount <= 0 {
		return errors.New("SETTLEMENT_BONUS_AMOUNT is required")
	}
	if cfg.CODOverdueAmount <= 0 {
		return errors.New("SETTLEMENT_COD_OVERDUE_AMOUNT is required")
	}
	if cfg.CODOverdueDays <= 0 {
		return errors.New("SETTLEMENT_COD_OVERDUE_DAYS is required")
	}
	if cfg.CODBlockedAmount < cfg.CODOverdueAmount {
		return errors.New("SETTLEMENT_COD_BLOCKED_AMOUNT must be >= SETTLEMENT_COD_OVERDUE_AMOUNT")
	}
	if cfg.CODBlockedDays < cfg.CODOverdueDays {
		return errors.New("SETTLEMENT_COD_BLOCKED_DAYS must be >= SETTLEMENT_COD_OVERDUE_DAYS")
	}
	return nil
}

func osGetInt(s string) (int, error) {
	val := os.Getenv(s)
	if val == "" {
		return 0, nil
	}

	res, err := strconv.Atoi(val)
	if err != nil {
		return 0, fmt.Errorf("invalid int format for %s=%q: %w", s, val, err)
	}
	return res, nil
}

func osGetInt64(s string) (int64, error) {
	val := os.Getenv(s)
	if val == "" {
		return 0, nil
	}

	res, err := strconv.ParseInt(val, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid int format for %s=%q: %w", s, val, err)
	}
	return res, nil
}

func osGetFloat(s string) (float64, error) {
	val := os.Getenv(s)
	if val == "" {
		return 0, nil
	}

	res, err := strconv.ParseFloat(val, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid float format for %s=%q: %w", s, val, err)
	}
	return res, nil
}

func osGetEnvDuration(s string) (time.Duration, error) {
	val := os.Getenv(s)
	if val == "" {
		return time.Duration(0), nil
	}

	res, err := time.ParseDuration(val)
	if err != nil {
		return time.Duration(0), fmt.Errorf("invalid duration format for %s=%q: %w", s, val, err)
	}
	return res, nil
}

func osGetBool(s string) (bool, error) {
	val := os.Getenv(s)
	if val == "" {
		return false, nil
	}

	res, err := strconv.ParseBool(val)
	if err != nil {
		return false, fmt.Errorf("invalid bool format for %s=%q: %w", s, val, err)
	}
	return res, nil
}
