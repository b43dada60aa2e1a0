package main

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
)

var ErrDownstreamUnavailable = errors.New("downstream unavailable")

// DownstreamResponse é a resposta bruta de um serviço downstream,
// repassada verbatim ao cliente.
type DownstreamResponse struct {
	StatusCode  int
	Body        []byte
	ContentType string
}

// Forwarder encaminha requisições para os serviços downstream
type Forwarder struct {
	client *resty.Client
}

// NewForwarder cria um Forwarder com timeout fixo por requisição
func NewForwarder(timeout time.Duration) *Forwarder {
	return &Forwarder{
		client: resty.New().SetTimeout(timeout),
	}
}

// Forward envia method+url com o corpo recebido e devolve status e corpo do
// downstream sem interpretá-los. Qualquer falha de transporte vira
// ErrDownstreamUnavailable; o detalhe interno nunca vaza para o cliente.
func (f *Forwarder) Forward(ctx context.Context, method, url string, body []byte, contentType string) (*DownstreamResponse, error) {
	req := f.client.R().SetContext(ctx)
	if len(body) > 0 {
		req.SetBody(body)
		if contentType != "" {
			req.SetHeader("Content-Type", contentType)
		}
	}

	resp, err := req.Execute(method, url)
	if err != nil {
		return nil, fmt.Errorf("%w: %s %s: %v", ErrDownstreamUnavailable, method, url, err)
	}

	return &DownstreamResponse{
		StatusCode:  resp.StatusCode(),
		Body:        resp.Body(),
		ContentType: resp.Header().Get("Content-Type"),
	}, nil
}
