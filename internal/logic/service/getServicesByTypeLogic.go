package service

import (
	"context"

	"github.com/warmtalk/backend/internal/svc"
	"github.com/warmtalk/backend/internal/types"

	"github.com/zeromicro/go-zero/core/logx"
)

type GetServicesByTypeLogic struct {
	logx.Logger
	ctx    context.Context
	svcCtx *svc.ServiceContext
}

func NewGetServicesByTypeLogic(ctx context.Context, svcCtx *svc.ServiceContext) *GetServicesByTypeLogic {
	return &GetServicesByTypeLogic{
		Logger: logx.WithContext(ctx),
		ctx:    ctx,
		svcCtx: svcCtx,
	}
}

func (l *GetServicesByTypeLogic) GetServicesByType(req *types.ServicesByTypeRequest) (*types.ServiceListResponse, error) {
	providers := l.svcCtx.Registry.GetProvidersByType(req.Type)
	return &types.ServiceListResponse{
		Code:    0,
		Message: "success",
		Data:    providerInfos(providers),
	}, nil
}
