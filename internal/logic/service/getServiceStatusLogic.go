package service

import (
	"context"

	"github.com/warmtalk/backend/internal/svc"
	"github.com/warmtalk/backend/internal/types"

	"github.com/zeromicro/go-zero/core/logx"
)

type GetServiceStatusLogic struct {
	logx.Logger
	ctx    context.Context
	svcCtx *svc.ServiceContext
}

func NewGetServiceStatusLogic(ctx context.Context, svcCtx *svc.ServiceContext) *GetServiceStatusLogic {
	return &GetServiceStatusLogic{
		Logger: logx.WithContext(ctx),
		ctx:    ctx,
		svcCtx: svcCtx,
	}
}

func (l *GetServiceStatusLogic) GetServiceStatus(req *types.ServiceStatusRequest) (*types.ServiceStatusResponse, error) {
	info, err := l.svcCtx.Registry.GetProviderInfo(req.Type, req.Name)
	if err != nil {
		return &types.ServiceStatusResponse{
			Code:    404,
			Message: err.Error(),
		}, nil
	}

	return &types.ServiceStatusResponse{
		Code:    0,
		Message: "success",
		Data: &types.ProviderInfo{
			Name:         info.Name,
			Type:         info.Type,
			Status:       info.Status,
			Capabilities: info.Capabilities,
			Config:       info.Config,
		},
	}, nil
}
