package notify

import "context"

// SMSSender define el puerto de salida hacia la pasarela SMS.
// La implementación concreta llama a Fast2SMS; para tests se inyecta un fake.
type SMSSender interface {
	Send(ctx context.Context, phone, message string) error
}
