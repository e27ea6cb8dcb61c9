package reservation

import "github.com/corypride/pictureMePerfect360/pkg/txmanager"

// Переиспользуем интерфейсы из txmanager для работы с БД
type DBExecutor = txmanager.DBExecutor
type TxExecutor = txmanager.TxExecutor
