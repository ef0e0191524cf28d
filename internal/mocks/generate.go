package mocks

//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name DataSource --dir ../usecase --output usecase --outpkg usecasemock --filename datasource_mock.go
