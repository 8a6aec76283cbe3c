package usecase

import (
	"encoding/json"
	"net/url"
	"regexp"
	"strings"

	bCtx "github.com/estatemint/goapi/base/ctx"
	"github.com/estatemint/goapi/base/log"
	"github.com/estatemint/goapi/domain"
)

type WebResourceUseCaseCfg struct {
	HttpReader    domain.WebResourceReaderRepository
	IpfsReader    domain.WebResourceReaderRepository
	DataUriReader domain.WebResourceReaderRepository
}

type webResourceUseCase struct {
	httpReader    domain.WebResourceReaderRepository
	ipfsReader    domain.WebResourceReaderRepository
	dataUriReader domain.WebResourceReaderRepository
}

func NewWebResourceUseCase(cfg *WebResourceUseCaseCfg) domain.WebResourceUseCase {
	return &webResourceUseCase{
		httpReader:    cfg.HttpReader,
		ipfsReader:    cfg.IpfsReader,
		dataUriReader: cfg.DataUriReader,
	}
}

func (u *webResourceUseCase) Get(c bCtx.Ctx, rawUrl string) ([]byte, error) {
	return u.get(c, rawUrl)
}

func (u *webResourceUseCase) GetJson(c bCtx.Ctx, rawUrl string) ([]byte, error) {
	data, err := u.get(c, rawUrl)
	if err != nil {
		return nil, err
	}
	if !json.Valid(data) {
		c.WithFields(log.Fields{
			"url": rawUrl,
		}).Error("invalid json")
		return nil, domain.ErrInvalidJsonFormat
	}

	return data, nil
}

func (u *webResourceUseCase) get(c bCtx.Ctx, rawUrl string) ([]byte, error) {
	var (
		data []byte
		err  error
	)

	pUrl, err := url.Parse(rawUrl)
	if err != nil {
		c.WithFields(log.Fields{
			"url": rawUrl,
			"err": err,
		}).Error("failed to parse url")
		return nil, err
	}

	switch pUrl.Scheme {
	case "https", "http":
		data, err = u.httpReader.Get(c, rawUrl)
	case "ipfs":
		ipfsUrl := strings.TrimPrefix(rawUrl, "ipfs://")
		ipfsUrl = strings.TrimPrefix(ipfsUrl, "ipfs/") // early foundation's metadata bug
		data, err = u.ipfsReader.Get(c, ipfsUrl)
	case "data":
		data, err = u.dataUriReader.Get(c, rawUrl)
	default:
		return nil, domain.ErrUnsupportedSchema
	}

	if err == nil {
		return data, nil
	}

	// a dead https gateway url may still be reachable through ipfs
	if pUrl.Scheme == "https" {
		ipfsUrl := getIpfsUrl(rawUrl)
		if len(ipfsUrl) > 0 {
			c.WithFields(log.Fields{
				"url":     rawUrl,
				"ipfsUrl": ipfsUrl,
			}).Info("retrying gateway url through ipfs")
			return u.ipfsReader.Get(c, strings.TrimPrefix(ipfsUrl, "ipfs://"))
		}
	}
	return nil, err
}

var ipfsPathRegexp = regexp.MustCompile(`/ipfs/(.+)`)

func getIpfsUrl(rawUrl string) string {
	matches := ipfsPathRegexp.FindStringSubmatch(rawUrl)
	if len(matches) != 2 {
		return ""
	}
	return "ipfs://" + matches[1]
}
