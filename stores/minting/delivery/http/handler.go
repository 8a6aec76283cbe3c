package http

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"golang.org/x/xerrors"

	"github.com/estatemint/goapi/base/ctx"
	"github.com/estatemint/goapi/base/delivery"
	"github.com/estatemint/goapi/domain"
	"github.com/estatemint/goapi/domain/minting"
	"github.com/estatemint/goapi/domain/property"
)

type mintResponse struct {
	TransactionHash string `json:"transaction_hash"`
	Message         string `json:"message"`
}

type handler struct {
	minting minting.Usecase
}

// New will initialize the minting endpoints
func New(e *echo.Echo, us minting.Usecase) {
	h := &handler{
		minting: us,
	}
	e.POST("/mint-nft", h.mint)
	e.GET("/get-metadata/:tokenId", h.getMetadata)
}

func (h *handler) mint(c echo.Context) error {
	context := c.Get("ctx").(ctx.Ctx)

	p := &property.Record{}
	if err := c.Bind(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, "invalid params")
	}
	if err := c.Validate(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err.Error())
	}

	res, err := h.minting.Mint(context, p)
	if err != nil {
		return delivery.MakeErrResp(c, err)
	}

	return c.JSON(http.StatusOK, mintResponse{
		TransactionHash: string(res.TxHash),
		Message:         "NFT minted successfully.",
	})
}

func (h *handler) getMetadata(c echo.Context) error {
	context := c.Get("ctx").(ctx.Ctx)

	tokenId, err := domain.ParseTokenId(c.Param("tokenId"))
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, xerrors.New("tokenId must be a positive integer"))
	}

	res, err := h.minting.GetMetadata(context, tokenId)
	if err != nil {
		return delivery.MakeErrResp(c, err)
	}

	return c.JSON(http.StatusOK, res)
}
