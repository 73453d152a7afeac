package todo

import (
	"fmt"

	"github.com/getseabird/todoelm/internal/scene"
	"github.com/samber/lo"
)

func SceneView(todos Todos) scene.Node {
	rows := lo.Map(todos.Visible(), func(item Item, _ int) scene.Node {
		return scene.Row(scene.Text(checkbox(item.Completed)+" "), scene.Text(item.Text))
	})

	return scene.Column(
		scene.Text("Add a todo:"),
		scene.Column(rows...),
		scene.Text(fmt.Sprintf("%s Hide completed (%d left)", checkbox(todos.Filter), todos.Remaining())),
	)
}

func checkbox(checked bool) string {
	if checked {
		return "[x]"
	}
	return "[ ]"
}
