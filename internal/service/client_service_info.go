package service

import (
	"context"

	"github.com/MKhiriev/go-blog-keeper/internal/adapter"
)

type clientInfoService struct {
	adapter adapter.ServerAdapter
}

func NewClientInfoService(serverAdapter adapter.ServerAdapter) ClientInfoService {
	return &clientInfoService{adapter: serverAdapter}
}

func (s *clientInfoService) ServerVersion(ctx context.Context) (string, error) {
	version, err := s.adapter.Version(ctx)
	if err != nil {
		return "", mapAdapterError(err)
	}
	return version, nil
}
