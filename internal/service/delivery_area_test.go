package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/leohenricardoso/encomenda-zap-sub000/internal/entity"
	mock_repository "github.com/leohenricardoso/encomenda-zap-sub000/internal/repository/mock"
	"github.com/leohenricardoso/encomenda-zap-sub000/internal/service"
	mock_logger "github.com/leohenricardoso/encomenda-zap-sub000/pkg/logger/mock"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
)

func makeRange(merchantID uuid.UUID, start, end string) *entity.DeliveryRange {
	return &entity.DeliveryRange{
		ID:         uuid.New(),
		MerchantID: merchantID,
		CEPStart:   start,
		CEPEnd:     end,
	}
}

func TestDeliveryAreaService_IsServed(t *testing.T) {
	ctx := context.Background()
	merchantID := uuid.New()

	testCases := []struct {
		desc     string
		ranges   []*entity.DeliveryRange
		cep      string
		expected service.AreaResult
	}{
		{
			desc:     "NoRangesMeansEverywhere",
			ranges:   []*entity.DeliveryRange{},
			cep:      "99999999",
			expected: service.AreaResult{Served: true, Unrestricted: true},
		},
		{
			desc: "InsideRange",
			ranges: []*entity.DeliveryRange{
				makeRange(merchantID, "01000000", "05999999"),
			},
			cep:      "03000000",
			expected: service.AreaResult{Served: true},
		},
		{
			desc: "OutsideAllRanges",
			ranges: []*entity.DeliveryRange{
				makeRange(merchantID, "01000000", "05999999"),
				makeRange(merchantID, "08000000", "08499999"),
			},
			cep:      "99999999",
			expected: service.AreaResult{},
		},
		{
			desc: "LowerBoundInclusive",
			ranges: []*entity.DeliveryRange{
				makeRange(merchantID, "01000000", "05999999"),
			},
			cep:      "01000000",
			expected: service.AreaResult{Served: true},
		},
		{
			desc: "UpperBoundInclusive",
			ranges: []*entity.DeliveryRange{
				makeRange(merchantID, "01000000", "05999999"),
			},
			cep:      "05999999",
			expected: service.AreaResult{Served: true},
		},
		{
			desc: "JustPastUpperBound",
			ranges: []*entity.DeliveryRange{
				makeRange(merchantID, "01000000", "05999999"),
			},
			cep:      "06000000",
			expected: service.AreaResult{},
		},
		{
			desc: "SecondRangeMatches",
			ranges: []*entity.DeliveryRange{
				makeRange(merchantID, "01000000", "05999999"),
				makeRange(merchantID, "08000000", "08499999"),
			},
			cep:      "08250000",
			expected: service.AreaResult{Served: true},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.desc, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			rangeRepo := mock_repository.NewMockDeliveryRangeRepository(ctrl)
			rangeRepo.EXPECT().GetListByMerchant(ctx, merchantID).
				Return(tc.ranges, nil).Times(1)

			log := mock_logger.NewMockLogger(ctrl)

			s := service.NewDeliveryAreaService(rangeRepo, log)

			result, err := s.IsServed(ctx, merchantID, tc.cep)
			if err != nil {
				t.Fatalf("expected no error, got %v", err)
			}
			if result != tc.expected {
				t.Errorf("expected %+v, got %+v", tc.expected, result)
			}
		})
	}
}

func TestDeliveryAreaService_CheckCode(t *testing.T) {
	ctx := context.Background()
	merchantID := uuid.New()

	t.Run("NormalizesFormattedInput", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		rangeRepo := mock_repository.NewMockDeliveryRangeRepository(ctrl)
		rangeRepo.EXPECT().GetListByMerchant(ctx, merchantID).
			Return([]*entity.DeliveryRange{
				makeRange(merchantID, "01000000", "05999999"),
			}, nil).Times(1)

		s := service.NewDeliveryAreaService(rangeRepo, mock_logger.NewMockLogger(ctrl))

		result, err := s.CheckCode(ctx, merchantID, "01310-100")
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if !result.Served {
			t.Error("expected formatted code inside the range to be served")
		}
	})

	t.Run("MalformedCode", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		rangeRepo := mock_repository.NewMockDeliveryRangeRepository(ctrl)

		s := service.NewDeliveryAreaService(rangeRepo, mock_logger.NewMockLogger(ctrl))

		_, err := s.CheckCode(ctx, merchantID, "1310")
		if !errors.Is(err, entity.ErrInvalidData) {
			t.Fatalf("expected ErrInvalidData, got %v", err)
		}
	})

	t.Run("RepositoryError", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		rangeRepo := mock_repository.NewMockDeliveryRangeRepository(ctrl)
		rangeRepo.EXPECT().GetListByMerchant(ctx, merchantID).
			Return(nil, errors.New("connection lost")).Times(1)

		s := service.NewDeliveryAreaService(rangeRepo, mock_logger.NewMockLogger(ctrl))

		if _, err := s.CheckCode(ctx, merchantID, "01310100"); err == nil {
			t.Fatal("expected error, got nil")
		}
	})
}
