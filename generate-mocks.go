//go:generate moq -out mock_storedriver_test.go . StoreDriver
//go:generate moq -out mock_transactionmanager_test.go . TransactionManager

package docwritex
