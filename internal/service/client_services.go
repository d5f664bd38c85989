package service

import (
	"github.com/MKhiriev/go-blog-keeper/internal/adapter"
	"github.com/MKhiriev/go-blog-keeper/internal/logger"
)

type ClientServices struct {
	Session     Session
	AuthService ClientAuthService
	PostService ClientPostService
	InfoService ClientInfoService
}

func NewClientServices(session Session, serverAdapter adapter.ServerAdapter, logger *logger.Logger) *ClientServices {
	return &ClientServices{
		Session:     session,
		AuthService: NewClientAuthService(session, serverAdapter, logger),
		PostService: NewClientPostService(session, serverAdapter, logger),
		InfoService: NewClientInfoService(serverAdapter),
	}
}
