package marks

import (
	"capstone-panel-system/internal/global/database"
	"capstone-panel-system/internal/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// SchemaCache 单次请求内的评分配置缓存
// 同一份报表会反复查同一个学院/系的配置，缓存命中后不再访问数据库；
// 缓存随请求构建、随请求丢弃，绝不做成进程级全局，避免读到过期配置
type SchemaCache struct {
	loader func(school, department string) (*model.MarkingSchema, error)
	cache  map[string]*model.MarkingSchema
}

// NewSchemaCache 构建使用数据库加载器的缓存
func NewSchemaCache() *SchemaCache {
	return NewSchemaCacheWithLoader(loadSchema)
}

// NewSchemaCacheWithLoader 构建使用指定加载器的缓存，测试用
func NewSchemaCacheWithLoader(loader func(school, department string) (*model.MarkingSchema, error)) *SchemaCache {
	return &SchemaCache{
		loader: loader,
		cache:  make(map[string]*model.MarkingSchema),
	}
}

// Get 取某学院/系的评分配置，未配置返回 nil
// 未配置的结果同样会被缓存，避免反复打到数据库
func (sc *SchemaCache) Get(school, department string) (*model.MarkingSchema, error) {
	key := school + "|||" + department
	if schema, ok := sc.cache[key]; ok {
		return schema, nil
	}
	schema, err := sc.loader(school, department)
	if err != nil {
		return nil, err
	}
	sc.cache[key] = schema
	return schema, nil
}

func loadSchema(school, department string) (*model.MarkingSchema, error) {
	var schema model.MarkingSchema
	err := database.DB.Preload("Reviews").
		Where("school = ? AND department = ?", school, department).
		First(&schema).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &schema, nil
}
