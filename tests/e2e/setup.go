//go:build e2e

package e2e

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"testing"
	"time"

	"savor-sync/cmd/bootstrap"
	"savor-sync/cmd/bootstrap/components"
	"savor-sync/internal/pkg/config"

	"github.com/docker/go-connections/nat"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
	"go.uber.org/fx"
)

var (
	redisContainerOnce sync.Once
	redisTestContainer testcontainers.Container
)

type ContainerInfo struct {
	Host string
	Port nat.Port
}

func (c ContainerInfo) Addr() string {
	return fmt.Sprintf("%s:%s", c.Host, c.Port.Port())
}

// ------------------------------------------------------------
// Per-suite environment
// ------------------------------------------------------------
func setupE2EEnvironment(t *testing.T) (*gin.Engine, config.Config, *FakeBackend, *redis.Client) {
	redisInfo := startContainers(t)

	backend := NewFakeBackend()
	t.Cleanup(backend.Close)

	cfg := createTestConfig(redisInfo, backend.URL())

	router, app := buildE2EApp(cfg)
	require.NotNil(t, router, "failed to build router")

	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := app.Stop(ctx); err != nil {
			slog.Warn("failed to stop fx app", "error", err.Error())
		}
	})

	client := redis.NewClient(&redis.Options{Addr: redisInfo.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	slog.Info("E2E environment ready",
		"redis_addr", redisInfo.Addr(),
		"backend_url", backend.URL())

	return router, cfg, backend, client
}

func startContainers(t *testing.T) ContainerInfo {
	gin.SetMode(gin.TestMode)
	startRedisContainerOnce(t)

	info, err := getContainerHostPort(redisTestContainer, "6379/tcp")
	require.NoError(t, err, "failed to read redis container address")
	return info
}

// ------------------------------------------------------------
// Application
// ------------------------------------------------------------
func buildE2EApp(cfg config.Config) (*gin.Engine, *fx.App) {
	var router *gin.Engine

	testConfigModule := fx.Module("testconfig",
		fx.Provide(func() config.Config { return cfg }),
	)

	app := fx.New(
		testConfigModule,
		fx.Provide(func() *gin.Engine { return gin.New() }),
		bootstrap.LoggerModule,
		bootstrap.StorageModule,
		bootstrap.EventsModule,
		components.PersistenceModule,
		components.GatewayModule,
		components.UseCaseModule,
		components.HandlerModule,

		fx.Populate(&router),

		fx.NopLogger,
	)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := app.Start(ctx); err != nil {
		panic(fmt.Sprintf("Failed to start fx app: %v", err))
	}
	if router == nil {
		panic("fx app started without a router")
	}
	return router, app
}

// Each suite gets its own key prefix so suites can share the container.
func createTestConfig(redisInfo ContainerInfo, backendURL string) config.Config {
	cfg := config.NewTestConfig()
	cfg.Backend.BaseURL = backendURL
	cfg.Storage.Driver = config.StorageDriverRedis
	cfg.Storage.RedisAddr = redisInfo.Addr()
	cfg.Storage.RedisPrefix = "e2e:" + uuid.NewString() + ":"
	return cfg
}

// ------------------------------------------------------------
// Containers
// ------------------------------------------------------------
func startGenericContainer(req testcontainers.ContainerRequest, timeoutSec int) (testcontainers.Container, error) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(timeoutSec)*time.Second)
	defer cancel()

	return testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
}

func startRedisContainerOnce(t *testing.T) {
	redisContainerOnce.Do(func() {
		req := testcontainers.ContainerRequest{
			Image:        "redis:7-alpine",
			ExposedPorts: []string{"6379/tcp"},
			Cmd:          []string{"redis-server", "--save", "", "--appendonly", "no"},
			WaitingFor: wait.ForAll(
				wait.ForLog("Ready to accept connections"),
				wait.ForListeningPort("6379/tcp"),
			).WithDeadline(60 * time.Second),
			Labels: map[string]string{"purpose": "e2e-tests"},
		}

		var err error
		redisTestContainer, err = startGenericContainer(req, 120)
		require.NoError(t, err, "failed to start redis container")
	})
}

func getContainerHostPort(c testcontainers.Container, port string) (ContainerInfo, error) {
	ctx := context.Background()
	mappedPort, err := c.MappedPort(ctx, nat.Port(port))
	if err != nil {
		return ContainerInfo{}, err
	}
	host, err := c.Host(ctx)
	if err != nil {
		return ContainerInfo{}, err
	}
	return ContainerInfo{Host: host, Port: mappedPort}, nil
}

// ------------------------------------------------------------
// Shared suite
// ------------------------------------------------------------
type SharedSuite struct {
	suite.Suite
	Router  *gin.Engine
	Config  config.Config
	Backend *FakeBackend
	Redis   *redis.Client
}

func (s *SharedSuite) SetupSharedSuite(t *testing.T) {
	router, cfg, backend, client := setupE2EEnvironment(t)
	s.Router = router
	s.Config = cfg
	s.Backend = backend
	s.Redis = client
	require.NotEmpty(t, s.Config, "config not loaded")
	require.NotNil(t, s.Router, "router not built")
}

func (s *SharedSuite) SetupSuite() {
	s.SetupSharedSuite(s.T())
}

func (s *SharedSuite) SetupTest() {
	s.resetState()
}

func (s *SharedSuite) SetupSubTest() {
	s.resetState()
}

// resetState clears this suite's device storage and the fake backend.
func (s *SharedSuite) resetState() {
	ctx := context.Background()
	iter := s.Redis.Scan(ctx, 0, s.Config.Storage.RedisPrefix+"*", 100).Iterator()
	var keys []string
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	require.NoError(s.T(), iter.Err(), "failed to scan device keys")
	if len(keys) > 0 {
		require.NoError(s.T(), s.Redis.Del(ctx, keys...).Err(), "failed to clear device keys")
	}
	s.Backend.Reset()
}

// DeviceKey reads a raw device storage value.
func (s *SharedSuite) DeviceKey(key string) (string, bool) {
	v, err := s.Redis.Get(context.Background(), s.Config.Storage.RedisPrefix+key).Result()
	if err != nil {
		return "", false
	}
	return v, true
}
