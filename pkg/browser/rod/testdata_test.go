package rod

const (
	BasicHTML = `<!DOCTYPE html>
<html>
<head><title>Test Page</title></head>
<body>
	<h1>Hello World</h1>
</body>
</html>`

	ReadinessHTML = `<!DOCTYPE html>
<html>
<body>
	<button id="enabled" class="o_form_button_edit">Edit</button>
	<button id="disabled" disabled>Save</button>
	<div id="hidden" class="o_form_readonly" style="display:none">readonly</div>
	<div id="late"></div>
	<script>
		setTimeout(function () {
			var a = document.createElement('a');
			a.id = 'appeared';
			a.textContent = 'Late link';
			document.getElementById('late').appendChild(a);
		}, 300);
	</script>
</body>
</html>`

	FormHTML = `<!DOCTYPE html>
<html>
<body>
	<form id="testForm" onsubmit="event.preventDefault(); window.submits = (window.submits || 0) + 1; document.getElementById('status').textContent = 'submitted ' + window.submits;">
		<input id="login" type="text" name="login" />
		<input id="password" type="password" name="password" />
		<select name="country_id">
			<option value="1">Belgium</option>
			<option value="2">United States</option>
		</select>
		<select name="region_id">
			<option value="10">New Spain</option>
			<option value="11"> Spain </option>
			<option value="12">Spain (Canary Islands)</option>
		</select>
	</form>
	<input id="orphan" type="text" name="orphan" />
	<div id="status"></div>
	<div id="keys"></div>
	<script>
		document.getElementById('login').addEventListener('keydown', function (e) {
			if (e.key === 'Tab') document.getElementById('keys').textContent = 'tab';
		});
	</script>
</body>
</html>`

	CoveredHTML = `<!DOCTYPE html>
<html>
<body>
	<button id="save" class="btn btn-primary o_form_button_save" onclick="window.saves = (window.saves || 0) + 1">Save</button>
	<div class="blockUI blockOverlay" style="position:fixed;top:0;left:0;width:100%;height:100%;z-index:1000;background:rgba(0,0,0,0.3)"></div>
</body>
</html>`

	RowsHTML = `<!DOCTYPE html>
<html>
<body>
	<table>
		<tbody>
			<tr><td>x</td><td> First </td></tr>
			<tr><td>x</td><td>Second</td></tr>
			<tr><td>x</td><td>Third</td></tr>
		</tbody>
	</table>
</body>
</html>`
)
