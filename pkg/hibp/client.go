// Copyright (c) 2022. Alvin Baena.
// SPDX-License-Identifier: MIT

// Package hibp queries the haveibeenpwned.com Pwned Passwords API using the
// k-anonymity range protocol: only the first five hex characters of the
// SHA-1 hash ever leave the machine.
package hibp

import (
	"bufio"
	"crypto/sha1"
	"crypto/tls"
	"encoding/hex"
	"fmt"
	"io"
	"net"
	"net/http"
	"runtime"
	"strconv"
	"strings"
	"time"

	"github.com/dgraph-io/ristretto"
	"github.com/hashicorp/go-retryablehttp"
	"github.com/rs/zerolog/log"
	"golang.org/x/net/context"
)

const rangeURL = "https://api.pwnedpasswords.com/range/%s"

type Client struct {
	http  *retryablehttp.Client
	cache *ristretto.Cache
}

// NewClient builds a breach-check client. Range responses are cached by hash
// prefix, so interactive and batch sessions that revisit a prefix do not
// re-fetch it.
func NewClient() (*Client, error) {
	cache, err := ristretto.NewCache(&ristretto.Config{
		// A full range response is ~35KB; bound the cache at about 64MiB.
		NumCounters: 1e5,
		MaxCost:     64 * 1024 * 1024,
		BufferItems: 64,
	})
	if err != nil {
		return nil, err
	}

	return &Client{
		http:  initHttpClient(),
		cache: cache,
	}, nil
}

func initHttpClient() *retryablehttp.Client {
	client := retryablehttp.NewClient()
	// retryablehttp's own logging is noise at this request rate.
	client.Logger = nil
	client.RetryMax = 3

	client.HTTPClient = &http.Client{
		Transport: &http.Transport{
			DisableCompression: false,
			TLSClientConfig: &tls.Config{
				MinVersion: tls.VersionTLS13,
			},
			DialContext: (&net.Dialer{
				Timeout:   30 * time.Second,
				KeepAlive: 30 * time.Second,
			}).DialContext,
			MaxIdleConns:          100,
			IdleConnTimeout:       10 * time.Second,
			TLSHandshakeTimeout:   10 * time.Second,
			ExpectContinueTimeout: 1 * time.Second,
			MaxIdleConnsPerHost:   runtime.GOMAXPROCS(0) + 1,
		},
	}

	return client
}

// PwnedCount reports how many times the password appears in the breach
// corpus. Zero means not found. Callers must translate an error into an
// unchecked breach result; it never carries strength information.
func (c *Client) PwnedCount(ctx context.Context, password string) (int, error) {
	h := sha1.New()
	h.Write([]byte(password))
	digest := strings.ToUpper(hex.EncodeToString(h.Sum(nil)))
	prefix, suffix := digest[:5], digest[5:]

	body, err := c.fetchRange(ctx, prefix)
	if err != nil {
		return 0, err
	}

	return countInRange(body, suffix)
}

// countInRange scans a range response body ("SUFFIX:COUNT" per line) for the
// given 35-character hash suffix.
func countInRange(body, suffix string) (int, error) {
	scanner := bufio.NewScanner(strings.NewReader(body))
	for scanner.Scan() {
		line := scanner.Text()
		rest, found := strings.CutPrefix(line, suffix+":")
		if !found {
			continue
		}

		count, err := strconv.Atoi(strings.TrimSpace(rest))
		if err != nil {
			return 0, fmt.Errorf("malformed range line %q: %w", line, err)
		}
		return count, nil
	}

	return 0, scanner.Err()
}

func (c *Client) fetchRange(ctx context.Context, prefix string) (string, error) {
	if cached, ok := c.cache.Get(prefix); ok {
		log.Debug().Msgf("range %s served from cache", prefix)
		return cached.(string), nil
	}

	req, err := retryablehttp.NewRequestWithContext(ctx, http.MethodGet, fmt.Sprintf(rangeURL, prefix), nil)
	if err != nil {
		return "", err
	}
	req.Header.Set("User-Agent", "golang-pwd-strength/1.0")

	timer := time.Now()
	res, err := c.http.Do(req)
	if err != nil {
		return "", err
	}

	defer func() {
		if err := res.Body.Close(); err != nil {
			log.Warn().Err(err).Msgf("error closing body for range %s", prefix)
		}
	}()

	if res.StatusCode >= 400 {
		return "", fmt.Errorf("range request for %s failed with status [%d] %s", prefix, res.StatusCode, res.Status)
	}

	resBody, err := io.ReadAll(res.Body)
	if err != nil {
		return "", err
	}

	body := string(resBody)
	log.Debug().Msgf("range %s fetched in %d ms", prefix, time.Since(timer).Milliseconds())
	c.cache.Set(prefix, body, int64(len(body)))
	return body, nil
}
