package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/MKhiriev/go-blog-keeper/internal/config"
	"github.com/MKhiriev/go-blog-keeper/internal/logger"
	"github.com/MKhiriev/go-blog-keeper/internal/utils"
	"github.com/MKhiriev/go-blog-keeper/models"
	"github.com/go-resty/resty/v2"
)

// HashHeader carries the hex HMAC-SHA256 of the request body when a hash key
// is configured on both sides.
const HashHeader = "HashSHA256"

type httpServerAdapter struct {
	client *utils.HTTPClient

	signer *utils.PayloadSigner

	logger *logger.Logger
}

// NewHTTPServerAdapter builds a resty-backed [ServerAdapter] for
// cfg.ServerURL. A bare host:port is treated as http.
func NewHTTPServerAdapter(cfg config.ClientAdapter, logger *logger.Logger) (ServerAdapter, error) {
	baseURL, err := normalizeBaseURL(cfg.ServerURL)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter server url: %w", err)
	}

	return &httpServerAdapter{
		client: utils.NewHTTPClient(baseURL, cfg.RequestTimeout),
		signer: utils.NewPayloadSigner(cfg.HashKey),
		logger: logger,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

func (h *httpServerAdapter) SignUp(ctx context.Context, req models.SignUpRequest) (string, error) {
	var result models.MessageResponse

	request, err := h.jsonRequest(ctx, req)
	if err != nil {
		return "", err
	}

	resp, err := request.SetResult(&result).Post("/api/user/signup")
	if err != nil {
		return "", transportError("signup", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	return result.Message, nil
}

func (h *httpServerAdapter) Login(ctx context.Context, req models.LoginRequest) (string, error) {
	var result models.LoginResponse

	request, err := h.jsonRequest(ctx, req)
	if err != nil {
		return "", err
	}

	resp, err := request.SetResult(&result).Post("/api/user/login")
	if err != nil {
		return "", transportError("login", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}
	if result.AccessToken == "" {
		return "", fmt.Errorf("login: empty access token in response")
	}

	return result.AccessToken, nil
}

func (h *httpServerAdapter) ListPosts(ctx context.Context, token string) ([]models.Post, error) {
	posts := make([]models.Post, 0)

	resp, err := h.authedRequest(ctx, token).SetResult(&posts).Get("/api/blog")
	if err != nil {
		return nil, transportError("list posts", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return posts, nil
}

func (h *httpServerAdapter) GetPost(ctx context.Context, token string, postID int64) (models.Post, error) {
	var post models.Post

	resp, err := h.authedRequest(ctx, token).SetResult(&post).Get(postPath(postID))
	if err != nil {
		return models.Post{}, transportError("get post", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Post{}, err
	}

	return post, nil
}

func (h *httpServerAdapter) CreatePost(ctx context.Context, token string, in models.PostInput) (models.Post, error) {
	var result models.PostResponse

	request, err := h.jsonRequest(ctx, in)
	if err != nil {
		return models.Post{}, err
	}

	resp, err := withBearer(request, token).SetResult(&result).Post("/api/blog")
	if err != nil {
		return models.Post{}, transportError("create post", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Post{}, err
	}

	return result.Blog, nil
}

func (h *httpServerAdapter) UpdatePost(ctx context.Context, token string, postID int64, in models.PostInput) error {
	request, err := h.jsonRequest(ctx, in)
	if err != nil {
		return err
	}

	resp, err := withBearer(request, token).Put(postPath(postID))
	if err != nil {
		return transportError("update post", err)
	}

	return mapHTTPError(resp)
}

func (h *httpServerAdapter) DeletePost(ctx context.Context, token string, postID int64) error {
	resp, err := h.authedRequest(ctx, token).Delete(postPath(postID))
	if err != nil {
		return transportError("delete post", err)
	}

	return mapHTTPError(resp)
}

func (h *httpServerAdapter) Version(ctx context.Context) (string, error) {
	resp, err := h.client.R().SetContext(ctx).Get("/version")
	if err != nil {
		return "", transportError("version", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	return strings.TrimSpace(string(resp.Body())), nil
}

// jsonRequest marshals body once so the exact bytes sent are the bytes
// signed.
func (h *httpServerAdapter) jsonRequest(ctx context.Context, body any) (*resty.Request, error) {
	payload, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("encode request body: %w", err)
	}

	req := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(payload)
	if sig := h.signer.Sign(payload); sig != "" {
		req.SetHeader(HashHeader, sig)
	}

	return req, nil
}

func (h *httpServerAdapter) authedRequest(ctx context.Context, token string) *resty.Request {
	return withBearer(h.client.R().SetContext(ctx), token)
}

func withBearer(req *resty.Request, token string) *resty.Request {
	if token != "" {
		req.SetHeader("Authorization", "Bearer "+token)
	}
	return req
}

func postPath(postID int64) string {
	return "/api/blog/" + strconv.FormatInt(postID, 10)
}
