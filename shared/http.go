package shared

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
)

// HttpService is a small fiber wrapper: route registration by method name and
// a graceful-shutdown hook on SIGINT/SIGTERM.
type HttpService struct {
	Name string
	Port string
	App  *fiber.App
}

func NewHttpService(name string, port string) *HttpService {
	return &HttpService{
		Name: name,
		Port: port,
		App:  fiber.New(fiber.Config{AppName: name}),
	}
}

func (h *HttpService) Use(args ...interface{}) {
	h.App.Use(args...)
}

func (h *HttpService) Routes(path string, handler fiber.Handler, method string) {
	switch method {
	case "GET":
		h.App.Get(path, handler)
	case "POST":
		h.App.Post(path, handler)
	case "PUT":
		h.App.Put(path, handler)
	case "DELETE":
		h.App.Delete(path, handler)
	default:
		h.App.Get(path, handler)
	}
}

// AuthRoutes registers a route behind an auth middleware.
func (h *HttpService) AuthRoutes(path string, auth fiber.Handler, handler fiber.Handler, method string) {
	switch method {
	case "GET":
		h.App.Get(path, auth, handler)
	case "POST":
		h.App.Post(path, auth, handler)
	case "PUT":
		h.App.Put(path, auth, handler)
	case "DELETE":
		h.App.Delete(path, auth, handler)
	default:
		h.App.Get(path, auth, handler)
	}
}

func (h *HttpService) Start(onShutdown func()) error {
	done := make(chan os.Signal, 1)
	signal.Notify(done, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-done
		if onShutdown != nil {
			onShutdown()
		}
		_ = h.App.Shutdown()
	}()

	return h.App.Listen(fmt.Sprintf(":%s", h.Port))
}
