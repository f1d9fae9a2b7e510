// internal/types/types.go
package types

// EntityID — уникальный идентификатор сущности. Выдаётся ECS по возрастанию и не переиспользуется.
type EntityID uint64
