package testcontract

//go:generate go run ../../cmd/inkwrap --metadata metadata.json --wasm-path testcontract.wasm --output testcontract.go
