package memory

import (
	"context"
	"errors"
	"sort"
	"sync"

	"github.com/auvet/auvet-backend/internal/domain/entities"
)

var (
	// ErrDuplicateKey espelha a violação de chave primária de um banco relacional
	ErrDuplicateKey = errors.New("memory: duplicate key")
)

type usuarioRow struct {
	seq   uint64
	value entities.Usuario
}

type funcionarioRow struct {
	seq   uint64
	value entities.Funcionario
}

// Store guarda usuários e funcionários em memória.
// Usado quando DB_DRIVER=memory e nos testes de serviço e handlers.
type Store struct {
	mu           sync.RWMutex
	txMu         sync.Mutex
	seq          uint64
	usuarios     map[string]usuarioRow
	funcionarios map[string]funcionarioRow
}

// NewStore cria um Store vazio
func NewStore() *Store {
	return &Store{
		usuarios:     make(map[string]usuarioRow),
		funcionarios: make(map[string]funcionarioRow),
	}
}

// Ping implementa ports.HealthChecker; o store em memória está sempre disponível
func (s *Store) Ping(ctx context.Context) error {
	return ctx.Err()
}

// lockWrites serializa escritas fora de transação com as transações abertas,
// para que um rollback nunca desfaça gravações de outras requisições.
// Dentro de uma transação o lock já pertence ao UnitOfWork.
func (s *Store) lockWrites(ctx context.Context) func() {
	if ctx.Value(txKey{}) != nil {
		return func() {}
	}
	s.txMu.Lock()
	return s.txMu.Unlock
}

func (s *Store) nextSeq() uint64 {
	s.seq++
	return s.seq
}

type snapshot struct {
	usuarios     map[string]usuarioRow
	funcionarios map[string]funcionarioRow
}

func (s *Store) snapshot() snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snap := snapshot{
		usuarios:     make(map[string]usuarioRow, len(s.usuarios)),
		funcionarios: make(map[string]funcionarioRow, len(s.funcionarios)),
	}
	for k, v := range s.usuarios {
		snap.usuarios[k] = v
	}
	for k, v := range s.funcionarios {
		v.value = cloneFuncionario(v.value)
		snap.funcionarios[k] = v
	}
	return snap
}

func (s *Store) restore(snap snapshot) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.usuarios = snap.usuarios
	s.funcionarios = snap.funcionarios
}

// cloneFuncionario evita que chamadores compartilhem o ponteiro de RegistroProfissional
func cloneFuncionario(f entities.Funcionario) entities.Funcionario {
	if f.RegistroProfissional != nil {
		registro := *f.RegistroProfissional
		f.RegistroProfissional = &registro
	}
	return f
}

func sortBySeq[T any](rows []T, seq func(T) uint64) {
	sort.Slice(rows, func(i, j int) bool {
		return seq(rows[i]) < seq(rows[j])
	})
}
