package voice

import (
	"context"
	"fmt"

	"github.com/warmtalk/backend/internal/svc"
	"github.com/warmtalk/backend/internal/types"

	"github.com/zeromicro/go-zero/core/logx"
)

type UploadLogic struct {
	logx.Logger
	ctx    context.Context
	svcCtx *svc.ServiceContext
}

func NewUploadLogic(ctx context.Context, svcCtx *svc.ServiceContext) *UploadLogic {
	return &UploadLogic{
		Logger: logx.WithContext(ctx),
		ctx:    ctx,
		svcCtx: svcCtx,
	}
}

func (l *UploadLogic) Upload(data []byte, filename string) (*types.UploadResponse, error) {
	if len(data) == 0 {
		return nil, fmt.Errorf("上传内容不能为空")
	}

	oss, err := l.svcCtx.Router.OSS()
	if err != nil {
		return nil, err
	}
	url, err := oss.Upload(l.ctx, data, filename)
	if err != nil {
		l.Errorf("upload failed: %v", err)
		return nil, err
	}
	return &types.UploadResponse{Url: url}, nil
}
