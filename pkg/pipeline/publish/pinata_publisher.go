package publish

import (
	"context"
	"fmt"

	"github.com/zde37/pinata-go-sdk/pinata"
)

type PinataPublisher struct {
	jwtKey string

	client *pinata.Client
}

var _ Publisher = (*PinataPublisher)(nil)

func NewPinataPublisher(jwtKey string) *PinataPublisher {
	return &PinataPublisher{
		jwtKey: jwtKey,
		client: pinata.New(pinata.NewAuthWithJWT(jwtKey)),
	}
}

func (p *PinataPublisher) PublishFile(ctx context.Context, filePath string) (string, error) {
	pinResponse, err := p.client.PinFile(filePath, nil)
	if err != nil {
		return "", fmt.Errorf("failed to upload file to pinata: %v", err)
	}

	return pinResponse.IpfsHash, nil
}

func (p *PinataPublisher) PublishJson(ctx context.Context, json interface{}) (string, error) {
	pinResponse, err := p.client.PinJSON(json, nil)
	if err != nil {
		return "", fmt.Errorf("failed to upload json to pinata: %v", err)
	}

	return pinResponse.IpfsHash, nil
}
