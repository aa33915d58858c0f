package zaputils

import (
	"fmt"

	"go.uber.org/zap"
)

func StoreName(key string, val string) zap.Field {
	return zap.String(key, val)
}

func CollectionName(key string, val string) zap.Field {
	return zap.String(key, val)
}

type LoggableWriteTarget struct {
	StoreName      string
	CollectionName string
}

func (t LoggableWriteTarget) String() string {
	return fmt.Sprintf("%s/%s", t.StoreName, t.CollectionName)
}

// WriteTarget renders a store/collection pair as a single field.
func WriteTarget(key string, storeName, collectionName string) zap.Field {
	return zap.Stringer(key, LoggableWriteTarget{
		StoreName:      storeName,
		CollectionName: collectionName,
	})
}
