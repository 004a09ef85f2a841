package config

import "time"

type (
	InternalConfig struct {
		App          App
		JWT          JWT
		Mailer       Mailer
		Payment      Payment
		Notification Notification
		Catalog      Catalog
	}

	DriverConfig struct {
		MongoDB  MongoDB
		Redis    Redis
		Logger   Logger
		SMTP     SMTP
		SendGrid SendGrid
		RabbitMQ RabbitMQ
		Minio    Minio
	}

	App struct {
		Env                        string
		Port                       string
		Version                    string
		Address                    string
		Timezone                   string
		EndpointPrefix             string
		AllowedOrigins             []string
		MaxRequests                int
		ShutdownTimeout            int
		MaxTimeRequestsPerSeconds  int
		RequestBodyLimitInMegabyte int
		RequestTimeout             time.Duration
	}

	JWT struct {
		Secret  string
		ExpTime time.Duration
	}

	Mailer struct {
		EmailSender string
		SenderName  string
	}

	Payment struct {
		StripeBaseUrl       string
		StripeSecretKey     string
		Currency            string
		LockExpiration      time.Duration
		RateLimitPerMinute  int
		RateLimitBurst      int
		RateLimitBlockAfter time.Duration
	}

	Notification struct {
		Queue           string
		PublishTimeout  time.Duration
		ReceiptBucket   string
		ArchiveReceipts bool
		Prefetch        int
		SendTimeout     time.Duration
	}

	Catalog struct {
		CacheTTL time.Duration
	}

	MongoDB struct {
		Port     string
		Host     string
		DbName   string
		Username string
		Password string
		URI      string
	}

	Redis struct {
		Host     string
		Port     string
		Password string
	}

	Logger struct {
		Level               string
		OutputFileName      string
		OutputErrorFileName string
	}

	SMTP struct {
		Host        string
		Port        int
		Username    string
		Password    string
		EmailSender string
	}

	SendGrid struct {
		ApiKey string
	}

	RabbitMQ struct {
		Port     string
		Host     string
		Username string
		Password string
	}

	Minio struct {
		Port     string
		Host     string
		Username string
		Password string
		UseSSL   bool
	}
)
