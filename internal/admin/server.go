package admin

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	app "github.com/HardRise/KindHands-Bot/internal/application"
)

// Server HTTP-интерфейс для волонтёров: списки волонтёров и кандидатов,
// непроверенные отчёты, запросы помощи. Диалоговую часть бота не трогает.
type Server struct {
	http       *fiber.App
	volunteers *app.VolunteerService
	log        *zap.Logger
}

// NewServer создаёт HTTP-сервер волонтёрской части
func NewServer(volunteers *app.VolunteerService, log *zap.Logger) *Server {
	s := &Server{
		http:       fiber.New(fiber.Config{DisableStartupMessage: true}),
		volunteers: volunteers,
		log:        log,
	}
	s.routes()
	return s
}

func (s *Server) routes() {
	v := s.http.Group("/volunteer")

	v.Get("/", s.listVolunteers)
	v.Get("/become", s.listCandidates)
	v.Get("/reports", s.listReports)
	v.Get("/help-requests", s.listHelpRequests)
	v.Delete("/:id", s.deleteVolunteer)
}

// Listen запускает сервер на указанном адресе
func (s *Server) Listen(addr string) error {
	s.log.Info("admin api listening", zap.String("addr", addr))
	return s.http.Listen(addr)
}

// Shutdown останавливает сервер
func (s *Server) Shutdown() error {
	return s.http.Shutdown()
}

// listVolunteers выводит всех принятых волонтёров
func (s *Server) listVolunteers(c *fiber.Ctx) error {
	result, err := s.volunteers.Volunteers(c.UserContext())
	if err != nil {
		return s.fail(c, err)
	}
	if len(result) == 0 {
		return c.SendStatus(fiber.StatusNotFound)
	}
	return c.JSON(result)
}

// listCandidates выводит всех желающих стать волонтёром
func (s *Server) listCandidates(c *fiber.Ctx) error {
	result, err := s.volunteers.Candidates(c.UserContext())
	if err != nil {
		return s.fail(c, err)
	}
	if len(result) == 0 {
		return c.SendStatus(fiber.StatusNotFound)
	}
	return c.JSON(result)
}

// listReports выводит непроверенные отчёты пользователей
func (s *Server) listReports(c *fiber.Ctx) error {
	result, err := s.volunteers.UnreviewedReports(c.UserContext())
	if err != nil {
		return s.fail(c, err)
	}
	return c.JSON(result)
}

// listHelpRequests выводит пользователей, ожидающих звонка волонтёра
func (s *Server) listHelpRequests(c *fiber.Ctx) error {
	result, err := s.volunteers.HelpRequests(c.UserContext())
	if err != nil {
		return s.fail(c, err)
	}
	return c.JSON(result)
}

// deleteVolunteer удаляет волонтёра по идентификатору
func (s *Server) deleteVolunteer(c *fiber.Ctx) error {
	if err := s.volunteers.Delete(c.UserContext(), c.Params("id")); err != nil {
		return s.fail(c, err)
	}
	return c.SendStatus(fiber.StatusOK)
}

func (s *Server) fail(c *fiber.Ctx, err error) error {
	s.log.Error("admin api", zap.String("path", c.Path()), zap.Error(err))
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "internal error"})
}
