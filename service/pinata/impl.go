package pinata

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/estatemint/goapi/base/ctx"
)

const (
	endpoint    = "https://api.pinata.cloud"
	pinJsonPath = "/pinning/pinJSONToIPFS"
)

type pinataImpl struct {
	apiKey    string
	apiSecret string
}

func New(apiKey, apiSecret string) Service {
	return &pinataImpl{apiKey, apiSecret}
}

func (im *pinataImpl) PinJson(c ctx.Ctx, value interface{}) (string, error) {
	body, err := json.Marshal(map[string]interface{}{
		"pinataContent": value,
	})
	if err != nil {
		c.WithField("err", err).Error("json.Marshal failed")
		return "", err
	}

	url := fmt.Sprintf("%s%s", endpoint, pinJsonPath)

	req, err := http.NewRequestWithContext(c, "POST", url, bytes.NewReader(body))
	if err != nil {
		c.WithField("err", err).Error("http.NewRequest failed")
		return "", err
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("pinata_api_key", im.apiKey)
	req.Header.Set("pinata_secret_api_key", im.apiSecret)

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		c.WithField("err", err).Error("DefaultClient.Do failed")
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		errorBody, _ := io.ReadAll(resp.Body)
		c.WithField("errorBody", string(errorBody)).Error("Request failed")
		return "", ErrRequestFailed
	}

	type payload struct {
		IpfsHash string `json:"IpfsHash"`
	}

	p := &payload{}

	if err := json.NewDecoder(resp.Body).Decode(p); err != nil {
		c.WithField("err", err).Error("json.NewDecoder.Decode failed")
		return "", err
	}

	return p.IpfsHash, nil
}
