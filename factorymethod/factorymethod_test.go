package factorymethod_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sghaida/creational/factorymethod"
)

func TestSomeOperation(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name    string
		creator factorymethod.Creator
		want    string
	}{
		{name: "creator 1", creator: factorymethod.Creator1{}, want: "{Result of the ConcreteProduct1}"},
		{name: "creator 2", creator: factorymethod.Creator2{}, want: "{Result of the ConcreteProduct2}"},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, "Creator: The same creator's code has just worked with "+tc.want, factorymethod.SomeOperation(tc.creator))
		})
	}
}

func TestFactoryMethod_ProductTypes(t *testing.T) {
	t.Parallel()

	assert.IsType(t, &factorymethod.Product1{}, factorymethod.Creator1{}.FactoryMethod())
	assert.IsType(t, &factorymethod.Product2{}, factorymethod.Creator2{}.FactoryMethod())
}

func TestRun_Transcript(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	require.NoError(t, factorymethod.Run(&buf))

	want := "App: Launched with the ConcreteCreator1.\n" +
		"Client: I'm not aware of the creator's class, but it still works.\n" +
		"Creator: The same creator's code has just worked with {Result of the ConcreteProduct1}\n" +
		"\n" +
		"App: Launched with the ConcreteCreator2.\n" +
		"Client: I'm not aware of the creator's class, but it still works.\n" +
		"Creator: The same creator's code has just worked with {Result of the ConcreteProduct2}\n"
	assert.Equal(t, want, buf.String())
}
