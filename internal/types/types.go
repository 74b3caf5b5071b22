// internal/types/types.go
package types

// EntityID — идентификатор сущности. ID выдаются по возрастанию и никогда не
// переиспользуются, поэтому ссылка на удалённую сущность просто перестаёт
// находиться в хранилище.
type EntityID uint64

// NoEntity is the zero ID; NewEntity never returns it.
const NoEntity EntityID = 0
