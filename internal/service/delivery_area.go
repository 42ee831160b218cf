package service

import (
	"context"
	"fmt"

	"github.com/leohenricardoso/encomenda-zap-sub000/internal/entity"
	"github.com/leohenricardoso/encomenda-zap-sub000/pkg/logger"

	"github.com/google/uuid"
)

type (
	// AreaResult distinguishes a merchant who ships everywhere from one
	// whose configured ranges happen to cover the code.
	AreaResult struct {
		Served       bool `json:"served"`
		Unrestricted bool `json:"unrestricted"`
	}

	DeliveryAreaService struct {
		rangeRepo DeliveryRangeRepository
		logger    logger.Logger
	}
)

func NewDeliveryAreaService(
	rangeRepo DeliveryRangeRepository,
	logger logger.Logger,
) *DeliveryAreaService {
	return &DeliveryAreaService{
		rangeRepo: rangeRepo,
		logger:    logger,
	}
}

// IsServed reports whether the merchant delivers to the postal code. A
// merchant with zero configured ranges delivers everywhere.
func (ds *DeliveryAreaService) IsServed(
	ctx context.Context,
	merchantID uuid.UUID,
	cep string,
) (AreaResult, error) {
	const op = "service.delivery_area.IsServed"

	ranges, err := ds.rangeRepo.GetListByMerchant(ctx, merchantID)
	if err != nil {
		return AreaResult{}, fmt.Errorf("%s: load ranges: %w", op, err)
	}

	if len(ranges) == 0 {
		return AreaResult{Served: true, Unrestricted: true}, nil
	}

	for _, r := range ranges {
		if r.Contains(cep) {
			return AreaResult{Served: true}, nil
		}
	}

	return AreaResult{}, nil
}

// CheckCode is the public pre-check variant: it normalizes the raw code
// before asking IsServed, so storefront clients can probe with formatted
// input ("01310-100").
func (ds *DeliveryAreaService) CheckCode(
	ctx context.Context,
	merchantID uuid.UUID,
	rawCEP string,
) (AreaResult, error) {
	const op = "service.delivery_area.CheckCode"

	cep, err := entity.NormalizeCEP(rawCEP)
	if err != nil {
		return AreaResult{}, fmt.Errorf("%s: %w", op, err)
	}

	return ds.IsServed(ctx, merchantID, cep)
}
