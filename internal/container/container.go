package container

import (
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/employee-directory/config"
	"github.com/oksasatya/employee-directory/internal/session"
	"github.com/oksasatya/employee-directory/pkg/helpers"
)

// app-level container to share constructed components across packages
// Router can auto-wire modules from these singletons.

var (
	cfg         *config.Config
	logger      *logrus.Logger
	pgPool      *pgxpool.Pool
	redisClient *redis.Client
	tokens      *helpers.TokenManager
	gate        *session.Manager
	cookies     *helpers.CookieManager
)

func SetConfig(c *config.Config)           { cfg = c }
func GetConfig() *config.Config            { return cfg }
func SetLogger(l *logrus.Logger)           { logger = l }
func GetLogger() *logrus.Logger            { return logger }
func SetPGPool(p *pgxpool.Pool)            { pgPool = p }
func GetPGPool() *pgxpool.Pool             { return pgPool }
func SetRedis(r *redis.Client)             { redisClient = r }
func GetRedis() *redis.Client              { return redisClient }
func SetTokens(t *helpers.TokenManager)    { tokens = t }
func GetTokens() *helpers.TokenManager     { return tokens }
func SetGate(g *session.Manager)           { gate = g }
func GetGate() *session.Manager            { return gate }
func SetCookies(m *helpers.CookieManager)  { cookies = m }
func GetCookies() *helpers.CookieManager   { return cookies }
