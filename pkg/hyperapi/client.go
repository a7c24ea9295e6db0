package hyperapi

import (
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/c9s/requestgen"
	"github.com/sirupsen/logrus"
	"golang.org/x/time/rate"

	"github.com/c9s/hyperliquid-go/pkg/envvar"
	"github.com/c9s/hyperliquid-go/pkg/nonce"
	"github.com/c9s/hyperliquid-go/pkg/version"
)

const (
	// ProductionURL is the mainnet REST endpoint.
	ProductionURL = "https://api.hyperliquid.xyz"

	// TestNetURL is the public testnet REST endpoint.
	TestNetURL = "https://api.hyperliquid-testnet.xyz"

	// LocalURL points at a node running on the local machine.
	LocalURL = "http://localhost:3001"
)

const UserAgent = "hyperliquid-go/" + version.Version

const defaultHTTPTimeout = time.Second * 15

// TestNet routes newly created clients to the testnet endpoint. It can also
// be switched on with the HYPERLIQUID_TESTNET environment variable.
var TestNet = false

var log = logrus.WithField("exchange", "hyperliquid")

// REST requests share an aggregated weight limit of 1200 per minute.
var restSharedLimiter = rate.NewLimiter(rate.Every(50*time.Millisecond), 1)

func init() {
	envvar.SetBool("HYPERLIQUID_TESTNET", &TestNet)
}

type Client struct {
	requestgen.BaseAPIClient

	nonce *nonce.MillisecondNonce
}

// mock me in tests
func NewClient() *Client {
	u, err := url.Parse(getAPIEndpoint())
	if err != nil {
		panic(err)
	}

	timeout := defaultHTTPTimeout
	if d, ok := envvar.Duration("HYPERLIQUID_HTTP_TIMEOUT"); ok {
		timeout = d
	}

	return &Client{
		BaseAPIClient: requestgen.BaseAPIClient{
			BaseURL: u,
			HttpClient: &http.Client{
				Timeout: timeout,
			},
		},
		nonce: nonce.NewMillisecondNonce(time.Now()),
	}
}

func getAPIEndpoint() string {
	if override, ok := envvar.String("HYPERLIQUID_API_BASE_URL"); ok && len(override) > 0 {
		return override
	}

	if TestNet {
		return TestNetURL
	}

	return ProductionURL
}

// NextNonce hands out the timestamp nonce for the next request. Values are
// unique and strictly increasing across all goroutines sharing this client.
func (c *Client) NextNonce() uint64 {
	return c.nonce.GetUint64()
}

// SendRequest sends the request through the shared rate limiter and decodes
// the response body.
func (c *Client) SendRequest(req *http.Request) (*requestgen.Response, error) {
	if err := restSharedLimiter.Wait(req.Context()); err != nil {
		return nil, fmt.Errorf("rate limiter wait error: %w", err)
	}

	req.Header.Set("User-Agent", UserAgent)

	debugf("sending request: %s %s", req.Method, req.URL.String())
	return c.BaseAPIClient.SendRequest(req)
}
