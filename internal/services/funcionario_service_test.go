package services_test

import (
	"context"
	"encoding/json"
	"errors"
	"sync"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/auvet/auvet-backend/internal/domain/entities"
	domainerrors "github.com/auvet/auvet-backend/internal/domain/errors"
	"github.com/auvet/auvet-backend/internal/domain/events"
	"github.com/auvet/auvet-backend/internal/domain/repositories"
	"github.com/auvet/auvet-backend/internal/infrastructure/logging"
	"github.com/auvet/auvet-backend/internal/infrastructure/persistence/memory"
	"github.com/auvet/auvet-backend/internal/services"
)

type recordingPublisher struct {
	mu     sync.Mutex
	events []events.Event
}

func (p *recordingPublisher) Publish(_ context.Context, event events.Event) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, event)
}

func (p *recordingPublisher) Last() events.Event {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.events[len(p.events)-1]
}

func (p *recordingPublisher) Types() []events.Type {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]events.Type, 0, len(p.events))
	for _, e := range p.events {
		out = append(out, e.Type)
	}
	return out
}

// failingFuncionarioRepo falha na inserção para simular erro após o usuário já ter sido gravado
type failingFuncionarioRepo struct {
	repositories.FuncionarioRepository
	err error
}

func (r *failingFuncionarioRepo) Create(context.Context, *entities.Funcionario) error {
	return r.err
}

func novoUsuario(cpf string) *entities.Usuario {
	return &entities.Usuario{
		CPF:   cpf,
		Nome:  "Ana Souza",
		Email: "ana@clinica.vet",
		Senha: "segredo",
	}
}

func strPtr(s string) *string { return &s }

func intPtr(i int) *int { return &i }

var _ = Describe("FuncionarioService", func() {
	var (
		ctx             context.Context
		store           *memory.Store
		usuarioRepo     repositories.UsuarioRepository
		funcionarioRepo repositories.FuncionarioRepository
		publisher       *recordingPublisher
		service         *services.FuncionarioService
	)

	BeforeEach(func() {
		ctx = context.Background()
		store = memory.NewStore()
		usuarioRepo = memory.NewUsuarioRepository(store)
		funcionarioRepo = memory.NewFuncionarioRepository(store)
		publisher = &recordingPublisher{}

		logger := logging.NewNopLogger()
		usuarioService := services.NewUsuarioService(usuarioRepo, logger)
		service = services.NewFuncionarioService(usuarioService, funcionarioRepo, memory.NewUnitOfWork(store), publisher, logger)
	})

	Describe("CreateFuncionario", func() {
		It("cria usuário e funcionário com os valores padrão", func() {
			funcionario, err := service.CreateFuncionario(ctx, novoUsuario("111"), services.FuncionarioInput{Cargo: "Veterinário"})

			Expect(err).NotTo(HaveOccurred())
			Expect(funcionario.CPF).To(Equal("111"))
			Expect(funcionario.Cargo).To(Equal("Veterinário"))
			Expect(funcionario.Status).To(Equal(entities.StatusAtivo))
			Expect(funcionario.NivelAcesso).To(Equal(entities.NivelAcessoPadrao))
			Expect(funcionario.RegistroProfissional).To(BeNil())

			usuario, err := usuarioRepo.FindByCPF(ctx, "111")
			Expect(err).NotTo(HaveOccurred())
			Expect(usuario).NotTo(BeNil())
			Expect(usuario.Nome).To(Equal("Ana Souza"))
			Expect(usuario.DataCadastro.IsZero()).To(BeFalse())

			Expect(publisher.Types()).To(Equal([]events.Type{events.FuncionarioCriado}))
		})

		It("publica o evento com as mesmas chaves JSON da API", func() {
			_, err := service.CreateFuncionario(ctx, novoUsuario("112"), services.FuncionarioInput{Cargo: "Veterinário"})
			Expect(err).NotTo(HaveOccurred())

			payload, err := json.Marshal(publisher.Last().Data)
			Expect(err).NotTo(HaveOccurred())
			Expect(payload).To(MatchJSON(`{"cpf":"112","cargo":"Veterinário","registroProfissional":null,"status":"ativo","nivelAcesso":1}`))
		})

		It("mantém os campos opcionais informados", func() {
			funcionario, err := service.CreateFuncionario(ctx, novoUsuario("222"), services.FuncionarioInput{
				Cargo:                "Veterinário",
				RegistroProfissional: strPtr("CRMV-SP 1234"),
				Status:               "inativo",
				NivelAcesso:          3,
			})

			Expect(err).NotTo(HaveOccurred())
			Expect(funcionario.RegistroProfissional).To(HaveValue(Equal("CRMV-SP 1234")))
			Expect(funcionario.Status).To(Equal("inativo"))
			Expect(funcionario.NivelAcesso).To(Equal(3))
		})

		It("rejeita CPF já cadastrado como usuário", func() {
			Expect(usuarioRepo.Create(ctx, novoUsuario("333"))).To(Succeed())

			funcionario, err := service.CreateFuncionario(ctx, novoUsuario("333"), services.FuncionarioInput{Cargo: "Recepcionista"})

			Expect(err).To(MatchError(domainerrors.ErrUsuarioJaCadastrado))
			Expect(funcionario).To(BeNil())

			existing, err := funcionarioRepo.FindByCPF(ctx, "333")
			Expect(err).NotTo(HaveOccurred())
			Expect(existing).To(BeNil())
			Expect(publisher.Types()).To(BeEmpty())
		})

		It("rejeita CPF já cadastrado como funcionário sem usuário", func() {
			Expect(funcionarioRepo.Create(ctx, &entities.Funcionario{CPF: "444", Cargo: "Auxiliar"})).To(Succeed())

			_, err := service.CreateFuncionario(ctx, novoUsuario("444"), services.FuncionarioInput{Cargo: "Veterinário"})

			Expect(err).To(MatchError(domainerrors.ErrFuncionarioJaCadastrado))

			usuario, err := usuarioRepo.FindByCPF(ctx, "444")
			Expect(err).NotTo(HaveOccurred())
			Expect(usuario).To(BeNil())
		})

		It("não deixa usuário órfão quando a inserção do funcionário falha", func() {
			storeErr := errors.New("insert failed")
			logger := logging.NewNopLogger()
			failing := services.NewFuncionarioService(
				services.NewUsuarioService(usuarioRepo, logger),
				&failingFuncionarioRepo{FuncionarioRepository: funcionarioRepo, err: storeErr},
				memory.NewUnitOfWork(store),
				publisher,
				logger,
			)

			_, err := failing.CreateFuncionario(ctx, novoUsuario("555"), services.FuncionarioInput{Cargo: "Veterinário"})

			Expect(err).To(MatchError(storeErr))
			Expect(domainerrors.IsConflict(err)).To(BeFalse())

			usuario, err := usuarioRepo.FindByCPF(ctx, "555")
			Expect(err).NotTo(HaveOccurred())
			Expect(usuario).To(BeNil())
			Expect(publisher.Types()).To(BeEmpty())
		})

		It("apenas uma de várias criações concorrentes com o mesmo CPF tem sucesso", func() {
			const attempts = 8
			var (
				wg        sync.WaitGroup
				mu        sync.Mutex
				successes int
			)

			for i := 0; i < attempts; i++ {
				wg.Add(1)
				go func() {
					defer wg.Done()
					defer GinkgoRecover()
					_, err := service.CreateFuncionario(ctx, novoUsuario("666"), services.FuncionarioInput{Cargo: "Veterinário"})
					if err == nil {
						mu.Lock()
						successes++
						mu.Unlock()
					}
				}()
			}
			wg.Wait()

			Expect(successes).To(Equal(1))
		})
	})

	Describe("leitura e escrita", func() {
		BeforeEach(func() {
			_, err := service.CreateFuncionario(ctx, novoUsuario("777"), services.FuncionarioInput{Cargo: "Veterinário"})
			Expect(err).NotTo(HaveOccurred())
		})

		It("GetByCPF retorna nil para CPF inexistente", func() {
			funcionario, err := service.GetByCPF(ctx, "000")
			Expect(err).NotTo(HaveOccurred())
			Expect(funcionario).To(BeNil())
		})

		It("GetAll lista os funcionários cadastrados", func() {
			funcionarios, err := service.GetAll(ctx)
			Expect(err).NotTo(HaveOccurred())
			Expect(funcionarios).To(HaveLen(1))
			Expect(funcionarios[0].CPF).To(Equal("777"))
		})

		It("Update altera apenas os campos informados e publica evento", func() {
			funcionario, err := service.Update(ctx, "777", repositories.FuncionarioUpdate{NivelAcesso: intPtr(2)})

			Expect(err).NotTo(HaveOccurred())
			Expect(funcionario.NivelAcesso).To(Equal(2))
			Expect(funcionario.Cargo).To(Equal("Veterinário"))
			Expect(publisher.Types()).To(Equal([]events.Type{events.FuncionarioCriado, events.FuncionarioAtualizado}))
		})

		It("Update retorna nil para CPF inexistente", func() {
			funcionario, err := service.Update(ctx, "000", repositories.FuncionarioUpdate{Cargo: strPtr("Auxiliar")})
			Expect(err).NotTo(HaveOccurred())
			Expect(funcionario).To(BeNil())
		})

		It("Delete remove o funcionário mas preserva o usuário", func() {
			deleted, err := service.Delete(ctx, "777")
			Expect(err).NotTo(HaveOccurred())
			Expect(deleted).To(BeTrue())

			deleted, err = service.Delete(ctx, "777")
			Expect(err).NotTo(HaveOccurred())
			Expect(deleted).To(BeFalse())

			usuario, err := usuarioRepo.FindByCPF(ctx, "777")
			Expect(err).NotTo(HaveOccurred())
			Expect(usuario).NotTo(BeNil())
			Expect(publisher.Types()).To(Equal([]events.Type{events.FuncionarioCriado, events.FuncionarioRemovido}))
		})
	})
})
