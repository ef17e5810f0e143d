package fault

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKindOf(t *testing.T) {
	assert.Equal(t, Validation, KindOf(Validationf("campo inválido")))
	assert.Equal(t, NotFound, KindOf(NotFoundf("não encontrado")))
	assert.Equal(t, Conflict, KindOf(Conflictf("duplicado")))
	assert.Equal(t, BusinessRule, KindOf(BusinessRulef("sem estoque")))
}

func TestKindOfWrappedError(t *testing.T) {
	err := fmt.Errorf("ao processar pedido: %w", NotFoundf("pedido não encontrado"))
	assert.Equal(t, NotFound, KindOf(err))
}

func TestKindOfPlainError(t *testing.T) {
	assert.Equal(t, Kind(0), KindOf(errors.New("falha de io")))
	assert.Equal(t, Kind(0), KindOf(nil))
}

func TestFieldsOf(t *testing.T) {
	err := ValidationFields("Um ou mais campos estão inválidos.", "name é obrigatório", "price deve ser maior que zero")
	assert.Len(t, FieldsOf(err), 2)
	assert.Nil(t, FieldsOf(errors.New("sem campos")))
}
