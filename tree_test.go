package showcase_test

import (
	"testing"

	"github.com/fwojciec/showcase"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNode(t *testing.T) {
	t.Parallel()

	t.Run("maintains parent and children", func(t *testing.T) {
		t.Parallel()

		root := showcase.NewNode("root")
		a := root.AddChild("a")
		b := root.AddChild("b")
		a1 := a.AddChild("a1")

		assert.True(t, root.IsRoot())
		assert.False(t, root.IsLeaf())
		assert.Same(t, root, a.Parent())
		assert.Same(t, a, a1.Parent())
		assert.Equal(t, []*showcase.Node[string]{a, b}, root.Children())
		assert.True(t, b.IsLeaf())
		assert.Equal(t, 0, root.Level())
		assert.Equal(t, 2, a1.Level())
		assert.Equal(t, -1, root.Index())
		assert.Equal(t, 1, b.Index())
	})

	t.Run("children cannot be modified through accessor", func(t *testing.T) {
		t.Parallel()

		root := showcase.NewNode(0)
		root.AddChild(1)
		children := root.Children()
		children[0] = nil

		assert.NotNil(t, root.Children()[0])
	})

	t.Run("walks in pre-order and stops early", func(t *testing.T) {
		t.Parallel()

		root := showcase.NewNode("root")
		a := root.AddChild("a")
		a.AddChild("a1")
		root.AddChild("b")

		var visited []string
		completed := root.Walk(func(n *showcase.Node[string]) bool {
			visited = append(visited, n.Value())
			return n.Value() != "a1"
		})

		assert.False(t, completed)
		assert.Equal(t, []string{"root", "a", "a1"}, visited)
	})

	t.Run("finds first matching node", func(t *testing.T) {
		t.Parallel()

		root := showcase.NewNode(0)
		root.AddChild(1).AddChild(2)
		root.AddChild(2)

		found := root.Find(func(v int) bool { return v == 2 })

		require.NotNil(t, found)
		assert.Equal(t, 2, found.Level())
		assert.Nil(t, root.Find(func(v int) bool { return v == 3 }))
	})
}

func TestFindPage(t *testing.T) {
	t.Parallel()

	menu := showcase.NewNode[*showcase.Page](nil)
	utils := menu.AddChild(showcase.NewPage("", "", "utils"))
	faces := showcase.NewPage("/showcase/utils/Faces.xhtml", "/showcase/utils/Faces.xhtml", "Faces")
	utils.AddChild(faces)

	assert.Same(t, faces, showcase.FindPage(menu, "/showcase/utils/Faces.xhtml"))
	assert.Nil(t, showcase.FindPage(menu, "/showcase/utils/Missing.xhtml"))
}

func TestPages(t *testing.T) {
	t.Parallel()

	menu := showcase.NewNode[*showcase.Page](nil)
	utils := menu.AddChild(showcase.NewPage("", "", "utils"))
	faces := utils.AddChild(showcase.NewPage("/showcase/utils/Faces.xhtml", "/showcase/utils/Faces.xhtml", "Faces")).Value()
	components := menu.AddChild(showcase.NewPage("", "", "components"))
	form := components.AddChild(showcase.NewPage("/showcase/components/form.xhtml", "/showcase/components/form.xhtml", "form")).Value()

	assert.Equal(t, []*showcase.Page{faces, form}, showcase.Pages(menu))
}
