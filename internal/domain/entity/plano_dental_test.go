package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPlanoDentalFluxo(t *testing.T) {
	p := &PlanoDental{Status: PlanoPendente}

	assert.True(t, p.Iniciar())
	assert.Equal(t, PlanoEmAndamento, p.Status)

	assert.True(t, p.Concluir())
	assert.Equal(t, PlanoConcluido, p.Status)
	assert.True(t, p.IsTerminal())

	assert.False(t, p.Iniciar())
	assert.False(t, p.Cancelar())
}

func TestPlanoDentalCancelar(t *testing.T) {
	for _, status := range []StatusPlano{PlanoPendente, PlanoEmAndamento} {
		p := &PlanoDental{Status: status}
		assert.True(t, p.Cancelar(), "status %s", status)
		assert.Equal(t, PlanoCancelado, p.Status)
	}

	p := &PlanoDental{Status: PlanoConcluido}
	assert.False(t, p.Cancelar())
}

func TestPlanoDentalConcluirSomenteEmAndamento(t *testing.T) {
	for _, status := range []StatusPlano{PlanoPendente, PlanoConcluido, PlanoCancelado} {
		p := &PlanoDental{Status: status}
		assert.False(t, p.Concluir(), "status %s", status)
	}
}
