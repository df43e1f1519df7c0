package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"frontdesk/infras/otel"
	"frontdesk/infras/upstream"
	"frontdesk/internal/domains/auth"
	"frontdesk/internal/domains/auth/model/dto"
	"frontdesk/shared/constant"
)

type Auth interface {
	Login(ctx context.Context, req dto.LoginRequest) (dto.LoginResponse, *auth.Session, error)
}

type serviceImpl struct {
	client upstream.Client
	otel   otel.Otel
}

func New(client upstream.Client, otel otel.Otel) Auth {
	return &serviceImpl{
		client: client,
		otel:   otel,
	}
}

// Login exchanges operator credentials for a gateway token and opens a
// session handle around it.
func (s *serviceImpl) Login(ctx context.Context, req dto.LoginRequest) (res dto.LoginResponse, session *auth.Session, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Login")
	defer scope.End()
	defer scope.TraceIfError(err)

	var token string

	if err = s.client.Post(ctx, upstream.ServiceGateway, "/auth/token", req, &token); err != nil {
		log.Error().Err(err).Str("username", req.Username).Msg("failed to authenticate against gateway")

		return res, nil, fmt.Errorf("failed to authenticate: %w", err)
	}

	session = auth.NewSession(token)
	res.Token = token

	return res, session, nil
}
