package proxy

import (
	"bytes"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/traceright/dataset-service/api-gateway/config"
	"github.com/traceright/dataset-service/api-gateway/loadbalancer"
	"github.com/traceright/dataset-service/pkg/logger"
)

// ReverseProxy forwards requests to backend service instances.
type ReverseProxy struct {
	config        *config.GatewayConfig
	client        *http.Client
	loadBalancers map[string]*loadbalancer.RoundRobin
}

// NewReverseProxy creates a new reverse proxy
func NewReverseProxy(cfg *config.GatewayConfig) *ReverseProxy {
	loadBalancers := make(map[string]*loadbalancer.RoundRobin)
	for name, svc := range cfg.Services {
		loadBalancers[name] = loadbalancer.NewRoundRobin(svc.Instances)
	}

	return &ReverseProxy{
		config:        cfg,
		loadBalancers: loadBalancers,
		client: &http.Client{
			// Seeding runs take a while; keep this above the backend's
			// worst-case commit time.
			Timeout: 5 * time.Minute,
		},
	}
}

// ProxyRequest forwards the request to the target service
func (p *ReverseProxy) ProxyRequest(c *fiber.Ctx, serviceName string) error {
	lb, ok := p.loadBalancers[serviceName]
	if !ok {
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{
			"error": fmt.Sprintf("Unknown service '%s'", serviceName),
		})
	}

	serverURL := lb.Next()
	if serverURL == "" {
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{
			"error": fmt.Sprintf("No available instances for '%s'", serviceName),
		})
	}

	targetURL := p.buildTargetURL(c, serverURL)

	req, err := http.NewRequestWithContext(
		c.UserContext(),
		c.Method(),
		targetURL,
		bytes.NewReader(c.Body()),
	)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to create request",
		})
	}

	p.copyHeaders(c, req)

	resp, err := p.client.Do(req)
	if err != nil {
		logger.Error(c.UserContext()).
			Err(err).
			Str("service", serviceName).
			Str("target_url", targetURL).
			Msg("Backend request failed")
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{
			"error":   "Failed to reach backend service",
			"service": serviceName,
		})
	}
	defer resp.Body.Close()

	p.copyResponseHeaders(c, resp)
	c.Status(resp.StatusCode)

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to read response",
		})
	}

	return c.Send(body)
}

func (p *ReverseProxy) buildTargetURL(c *fiber.Ctx, serverURL string) string {
	path := string(c.Request().URI().Path())
	queryString := string(c.Request().URI().QueryString())
	if queryString != "" {
		queryString = "?" + queryString
	}
	return serverURL + path + queryString
}

func (p *ReverseProxy) copyHeaders(c *fiber.Ctx, req *http.Request) {
	c.Request().Header.VisitAll(func(key, value []byte) {
		if strings.ToLower(string(key)) == "host" {
			return
		}
		req.Header.Set(string(key), string(value))
	})

	req.Header.Set("X-Forwarded-For", c.IP())
	req.Header.Set("X-Forwarded-Proto", c.Protocol())
	req.Header.Set("X-Forwarded-Host", c.Hostname())
}

func (p *ReverseProxy) copyResponseHeaders(c *fiber.Ctx, resp *http.Response) {
	for key, values := range resp.Header {
		if strings.ToLower(key) == "content-length" {
			continue
		}
		for _, value := range values {
			c.Set(key, value)
		}
	}
}
