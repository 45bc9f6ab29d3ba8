package usecase

import "context"

type CatalogUC interface {
	ListProducts(ctx context.Context, req *ListProductsReq) (*ListProductsRes, error)
	SearchProducts(ctx context.Context, req *SearchProductsReq) (*SearchProductsRes, error)
}

type ContentUC interface {
	GetUser(ctx context.Context, id int64) (*UserRes, error)
	GetArticle(ctx context.Context, id int64) (*ArticleRes, error)
}
