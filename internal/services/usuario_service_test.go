package services_test

import (
	"context"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/auvet/auvet-backend/internal/domain/repositories"
	"github.com/auvet/auvet-backend/internal/infrastructure/logging"
	"github.com/auvet/auvet-backend/internal/infrastructure/persistence/memory"
	"github.com/auvet/auvet-backend/internal/services"
)

var _ = Describe("UsuarioService", func() {
	var (
		ctx     context.Context
		service *services.UsuarioService
	)

	BeforeEach(func() {
		ctx = context.Background()
		service = services.NewUsuarioService(memory.NewUsuarioRepository(memory.NewStore()), logging.NewNopLogger())
	})

	It("preenche a data de cadastro quando ausente", func() {
		before := time.Now().UTC().Add(-time.Second)

		usuario, err := service.Create(ctx, novoUsuario("123"))

		Expect(err).NotTo(HaveOccurred())
		Expect(usuario.DataCadastro).To(BeTemporally(">=", before))
	})

	It("preserva a data de cadastro informada", func() {
		dataCadastro := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
		input := novoUsuario("124")
		input.DataCadastro = dataCadastro

		usuario, err := service.Create(ctx, input)

		Expect(err).NotTo(HaveOccurred())
		Expect(usuario.DataCadastro).To(Equal(dataCadastro))
	})

	It("falha ao criar CPF duplicado", func() {
		_, err := service.Create(ctx, novoUsuario("125"))
		Expect(err).NotTo(HaveOccurred())

		_, err = service.Create(ctx, novoUsuario("125"))
		Expect(err).To(MatchError(memory.ErrDuplicateKey))
	})

	It("atualiza e remove usuários", func() {
		_, err := service.Create(ctx, novoUsuario("126"))
		Expect(err).NotTo(HaveOccurred())

		usuario, err := service.Update(ctx, "126", repositories.UsuarioUpdate{Email: strPtr("novo@clinica.vet")})
		Expect(err).NotTo(HaveOccurred())
		Expect(usuario.Email).To(Equal("novo@clinica.vet"))
		Expect(usuario.Nome).To(Equal("Ana Souza"))

		missing, err := service.Update(ctx, "999", repositories.UsuarioUpdate{Nome: strPtr("X")})
		Expect(err).NotTo(HaveOccurred())
		Expect(missing).To(BeNil())

		deleted, err := service.Delete(ctx, "126")
		Expect(err).NotTo(HaveOccurred())
		Expect(deleted).To(BeTrue())

		usuarios, err := service.GetAll(ctx)
		Expect(err).NotTo(HaveOccurred())
		Expect(usuarios).To(BeEmpty())
	})
})
