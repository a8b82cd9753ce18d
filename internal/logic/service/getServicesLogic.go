package service

import (
	"context"

	"github.com/warmtalk/backend/internal/svc"
	"github.com/warmtalk/backend/internal/types"
	"github.com/warmtalk/backend/pkg/provider"

	"github.com/zeromicro/go-zero/core/logx"
)

type GetServicesLogic struct {
	logx.Logger
	ctx    context.Context
	svcCtx *svc.ServiceContext
}

func NewGetServicesLogic(ctx context.Context, svcCtx *svc.ServiceContext) *GetServicesLogic {
	return &GetServicesLogic{
		Logger: logx.WithContext(ctx),
		ctx:    ctx,
		svcCtx: svcCtx,
	}
}

func (l *GetServicesLogic) GetServices() (*types.ServiceListResponse, error) {
	providers := l.svcCtx.Registry.GetAllProviders()
	return &types.ServiceListResponse{
		Code:    0,
		Message: "success",
		Data:    providerInfos(providers),
	}, nil
}

func providerInfos(providers []provider.ProviderInfo) []types.ProviderInfo {
	infos := make([]types.ProviderInfo, 0, len(providers))
	for _, p := range providers {
		infos = append(infos, types.ProviderInfo{
			Name:         p.Name,
			Type:         p.Type,
			Status:       p.Status,
			Capabilities: p.Capabilities,
			Config:       p.Config,
		})
	}
	return infos
}
