package ui

const themeInitScript = `(function(){
  var root=document.documentElement;
  var media=window.matchMedia('(prefers-color-scheme: dark)');
  function normalize(mode){
    return mode==='light'||mode==='dark'||mode==='auto'?mode:'auto';
  }
  function apply(mode){
    var selected=normalize(mode);
    var resolved=selected==='auto'?(media.matches?'dark':'light'):selected;
    root.setAttribute('data-theme-mode',selected);
    root.setAttribute('data-theme',resolved);
  }
  var stored='auto';
  try {
    stored=normalize(localStorage.getItem('lantern-theme')||'auto');
  } catch (_) {}
  apply(stored);
  window.__lanternThemeApply=apply;
})();`

const themeBehaviorScript = `(function(){
  var root=document.documentElement;
  var media=window.matchMedia('(prefers-color-scheme: dark)');
  var apply=window.__lanternThemeApply||function(mode){
    var selected=mode==='light'||mode==='dark'||mode==='auto'?mode:'auto';
    var resolved=selected==='auto'?(media.matches?'dark':'light'):selected;
    root.setAttribute('data-theme-mode',selected);
    root.setAttribute('data-theme',resolved);
  };

  function resolvedMode(){
    return root.getAttribute('data-theme')==='dark'?'dark':'light';
  }

  function syncToggle(){
    var toggle=document.getElementById('theme-toggle');
    if(!toggle){ return; }
    var isDark=resolvedMode()==='dark';
    var sun=document.getElementById('theme-icon-sun');
    var moon=document.getElementById('theme-icon-moon');
    if(sun){ sun.classList.toggle('is-hidden', isDark); }
    if(moon){ moon.classList.toggle('is-hidden', !isDark); }
    var label=isDark?'Switch to light theme':'Switch to dark theme';
    toggle.setAttribute('aria-label', label);
    toggle.setAttribute('title', label);
  }

  function setMode(mode){
    apply(mode);
    try { localStorage.setItem('lantern-theme', mode); } catch (_) {}
    syncToggle();
  }

  window.__lanternTheme={
    set:setMode,
    toggle:function(){ setMode(resolvedMode()==='dark'?'light':'dark'); }
  };

  var onSystemThemeChange=function(){
    if((root.getAttribute('data-theme-mode')||'auto')==='auto'){
      apply('auto');
      syncToggle();
    }
  };
  if(media.addEventListener){
    media.addEventListener('change', onSystemThemeChange);
  } else if(media.addListener){
    media.addListener(onSystemThemeChange);
  }

  syncToggle();
})();`
