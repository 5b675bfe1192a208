package usecase

import "context"

const APIVersion = "1.0.0"

type HealthUsecase interface {
	Check(ctx context.Context) map[string]string
}

type healthUsecase struct{}

func NewHealthUsecase() HealthUsecase {
	return &healthUsecase{}
}

func (u *healthUsecase) Check(ctx context.Context) map[string]string {
	return map[string]string{
		"status":  "success",
		"message": "Portfolio API is running",
		"version": APIVersion,
	}
}
