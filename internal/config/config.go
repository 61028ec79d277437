package config

import (
	"errors"
	"fmt"
	"net"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	AppPort string

	MySQLHost string
	MySQLPort string
	MySQLDB   string
	MySQLUser string
	MySQLPass string

	RedisAddr string
	RedisPass string
	RedisDB   int

	IdempTTLSecs int

	JWTSecret    string
	APIKey       string
	TokenTTLMins int

	// LeaveAdmissionCap bounds consumed + reserved + requested days when
	// a LEAVE request is created. LeaveReportingCap is the separate
	// advisory figure reported with attendance history; the two are
	// distinct on purpose.
	LeaveAdmissionCap int
	LeaveReportingCap int
	// AdminLevel is the minimum level that may delete others' pending requests.
	AdminLevel int
}

func getenv(k, d string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return d
}

func getenvInt(k string, d int) int {
	if v := os.Getenv(k); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return d
}

func Load() *Config {
	// .env is optional; real deployments set the environment directly
	_ = godotenv.Load()

	return &Config{
		AppPort:   getenv("APP_PORT", "8080"),
		MySQLHost: getenv("MYSQL_HOST", "mysql"),
		MySQLPort: getenv("MYSQL_PORT", "3306"),
		MySQLDB:   getenv("MYSQL_DB", "hr_attendance"),
		MySQLUser: getenv("MYSQL_USER", "hr"),
		MySQLPass: getenv("MYSQL_PASS", "hr"),

		RedisAddr:    getenv("REDIS_ADDR", "redis:6379"),
		RedisPass:    getenv("REDIS_PASS", ""),
		RedisDB:      getenvInt("REDIS_DB", 0),
		IdempTTLSecs: getenvInt("IDEMPOTENCY_TTL_SECONDS", 300),

		JWTSecret:    getenv("JWT_SECRET", ""),
		APIKey:       getenv("API_KEY", ""),
		TokenTTLMins: getenvInt("TOKEN_TTL_MINUTES", 60),

		LeaveAdmissionCap: getenvInt("LEAVE_ADMISSION_CAP", 15),
		LeaveReportingCap: getenvInt("LEAVE_REPORTING_CAP", 24),
		AdminLevel:        getenvInt("ADMIN_LEVEL", 7),
	}
}

func (c *Config) Validate() error {
	if c.MySQLHost == "" || c.MySQLPort == "" || c.MySQLDB == "" || c.MySQLUser == "" {
		return errors.New("missing MySQL config (MYSQL_HOST/PORT/DB/USER)")
	}
	// ensure port is valid
	if _, err := net.LookupPort("tcp", c.MySQLPort); err != nil {
		return fmt.Errorf("invalid MYSQL_PORT %q: %w", c.MySQLPort, err)
	}
	if c.AppPort == "" {
		return errors.New("missing APP_PORT")
	}
	if c.JWTSecret == "" {
		return errors.New("missing JWT_SECRET")
	}
	return nil
}

func (c *Config) mysqlAddr() string { return net.JoinHostPort(c.MySQLHost, c.MySQLPort) }

func (c *Config) MySQLDSN() string {
	// multiStatements=true is handy for migrations; parseTime needed for DATE/DATETIME
	return fmt.Sprintf("%s:%s@tcp(%s)/%s?multiStatements=true&parseTime=true&charset=utf8mb4,utf8",
		c.MySQLUser, c.MySQLPass, c.mysqlAddr(), c.MySQLDB)
}
