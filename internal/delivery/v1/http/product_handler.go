package http

import (
	"net/http"

	"github.com/DRSN-tech/catalog-api/internal/usecase"
	"github.com/DRSN-tech/catalog-api/pkg/logger"
)

type ProductHandler struct {
	catalogUsecase usecase.CatalogUC
	logger         logger.Logger
}

func NewProductHandler(catalogUsecase usecase.CatalogUC, logger logger.Logger) *ProductHandler {
	return &ProductHandler{catalogUsecase: catalogUsecase, logger: logger}
}

// listProducts
//
//	@Summary		Листинг товаров
//	@Description	Возвращает отфильтрованную, отсортированную и постраничную выборку товаров
//	@Tags			products
//	@Produce		json
//	@Param			category		query		string	false	"Точное совпадение категории"
//	@Param			min_price		query		number	false	"Нижняя граница цены (включительно)"
//	@Param			max_price		query		number	false	"Верхняя граница цены (включительно)"
//	@Param			search_by_name	query		string	false	"Подстрока имени без учета регистра (мин. 2 символа)"
//	@Param			in_stock		query		boolean	false	"Наличие на складе"
//	@Param			sort_by			query		string	false	"Поле сортировки"	Enums(price, name)
//	@Param			sort_order		query		string	false	"Направление сортировки"	Enums(asc, desc)	default(asc)
//	@Param			limit			query		integer	false	"Размер страницы [1,100]"	default(10)
//	@Param			offset			query		integer	false	"Смещение страницы"			default(0)
//	@Success		200				{object}	usecase.ListProductsRes
//	@Failure		400				{object}	ErrorResponse	"min_price больше max_price"
//	@Failure		422				{object}	ErrorResponse	"Ошибка валидации параметров"
//	@Router			/products [get]
func (p *ProductHandler) listProducts(w http.ResponseWriter, r *http.Request) {
	req, err := parseListProductsQuery(r)
	if err != nil {
		p.logger.Warnf("%d: %s", http.StatusUnprocessableEntity, err.Error())
		WriteError(w, err)
		return
	}

	res, err := p.catalogUsecase.ListProducts(r.Context(), req)
	if err != nil {
		p.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, res)
}

// searchProducts
//
//	@Summary		Поиск товаров по имени
//	@Description	Подстрочный поиск без учета регистра, без пагинации
//	@Tags			products
//	@Produce		json
//	@Param			q			query		string	true	"Поисковая строка (2-50 символов)"
//	@Param			category	query		string	false	"Точное совпадение категории"
//	@Param			sort		query		string	false	"Порядок результатов"	Enums(price_asc, price_desc, name, relevance)	default(relevance)
//	@Success		200			{object}	usecase.SearchProductsRes
//	@Failure		422			{object}	ErrorResponse	"Ошибка валидации параметров"
//	@Router			/search [get]
func (p *ProductHandler) searchProducts(w http.ResponseWriter, r *http.Request) {
	req := parseSearchQuery(r)

	res, err := p.catalogUsecase.SearchProducts(r.Context(), req)
	if err != nil {
		p.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, res)
}
